package utils

import (
	"encoding/xml"
	"log"
	"os"

	"talyouth/config"
)

// SDG is one Sustainable Development Goal from the static catalog
type SDG struct {
	Number      int    `xml:"number,attr" json:"number"`
	Title       string `xml:"title" json:"title"`
	Description string `xml:"description" json:"description"`
	Color       string `xml:"color" json:"color"`
}

// CurriculumWeek is one week inside a curriculum theme
type CurriculumWeek struct {
	Number      int      `xml:"number,attr" json:"number"`
	Title       string   `xml:"title" json:"title"`
	Description string   `xml:"description" json:"description"`
	Activities  []string `xml:"activity" json:"activities"`
}

// CurriculumTheme is a named theme with its ordered weeks
type CurriculumTheme struct {
	Name        string           `xml:"name,attr" json:"name"`
	Title       string           `xml:"title" json:"title"`
	Description string           `xml:"description" json:"description"`
	Weeks       []CurriculumWeek `xml:"week" json:"weeks"`
}

type sdgCatalog struct {
	SDGs []SDG `xml:"sdg"`
}

type curriculumDoc struct {
	Themes []CurriculumTheme `xml:"theme"`
}

// LoadSDGCatalog parses the static SDG catalog. Parse failures are logged and
// yield an empty catalog; callers must tolerate that.
func LoadSDGCatalog() []SDG {
	data, err := os.ReadFile(config.AppConfig.SDGDataFile)
	if err != nil {
		log.Printf("Error loading SDG XML: %v", err)
		return []SDG{}
	}
	return parseSDGCatalog(data)
}

func parseSDGCatalog(data []byte) []SDG {
	var doc sdgCatalog
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.Printf("Error parsing SDG XML: %v", err)
		return []SDG{}
	}
	return doc.SDGs
}

// LoadCurriculum parses the static curriculum outline with the same failure
// policy as LoadSDGCatalog.
func LoadCurriculum() []CurriculumTheme {
	data, err := os.ReadFile(config.AppConfig.CurriculumDataFile)
	if err != nil {
		log.Printf("Error loading curriculum XML: %v", err)
		return []CurriculumTheme{}
	}
	return parseCurriculum(data)
}

func parseCurriculum(data []byte) []CurriculumTheme {
	var doc curriculumDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.Printf("Error parsing curriculum XML: %v", err)
		return []CurriculumTheme{}
	}
	return doc.Themes
}
