package utils

import (
	"testing"

	"talyouth/config"

	"github.com/stretchr/testify/assert"
)

const sdgSample = `<?xml version="1.0" encoding="UTF-8"?>
<sdgs>
  <sdg number="1">
    <title>No Poverty</title>
    <description>End poverty in all its forms everywhere</description>
    <color>#E5243B</color>
  </sdg>
  <sdg number="13">
    <title>Climate Action</title>
    <description>Take urgent action to combat climate change</description>
    <color>#3F7E44</color>
  </sdg>
</sdgs>`

const curriculumSample = `<?xml version="1.0" encoding="UTF-8"?>
<curriculum>
  <theme name="discover">
    <title>Discover</title>
    <description>Understand the goals</description>
    <week number="1">
      <title>Foundations</title>
      <description>What the SDGs are</description>
      <activity>Watch the intro videos</activity>
      <activity>Pick your SDG</activity>
    </week>
  </theme>
</curriculum>`

func TestParseSDGCatalog(t *testing.T) {
	sdgs := parseSDGCatalog([]byte(sdgSample))
	assert.Len(t, sdgs, 2)
	assert.Equal(t, 1, sdgs[0].Number)
	assert.Equal(t, "No Poverty", sdgs[0].Title)
	assert.Equal(t, "#3F7E44", sdgs[1].Color)
}

func TestParseSDGCatalogMalformed(t *testing.T) {
	sdgs := parseSDGCatalog([]byte("<sdgs><sdg"))
	assert.Empty(t, sdgs)
}

func TestParseCurriculum(t *testing.T) {
	themes := parseCurriculum([]byte(curriculumSample))
	assert.Len(t, themes, 1)
	assert.Equal(t, "discover", themes[0].Name)
	assert.Len(t, themes[0].Weeks, 1)
	assert.Equal(t, []string{"Watch the intro videos", "Pick your SDG"}, themes[0].Weeks[0].Activities)
}

func TestLoadSDGCatalogFromDisk(t *testing.T) {
	config.AppConfig = &config.Config{SDGDataFile: "../static/data/sdgs.xml"}
	sdgs := LoadSDGCatalog()
	assert.Len(t, sdgs, 17)
	assert.Equal(t, "No Poverty", sdgs[0].Title)
}

func TestLoadCurriculumFromDisk(t *testing.T) {
	config.AppConfig = &config.Config{CurriculumDataFile: "../static/data/curriculum.xml"}
	themes := LoadCurriculum()
	assert.Len(t, themes, 2)
	for _, theme := range themes {
		assert.Len(t, theme.Weeks, 2)
	}
}

func TestLoadSDGCatalogMissingFile(t *testing.T) {
	config.AppConfig = &config.Config{SDGDataFile: "does-not-exist.xml"}
	assert.Empty(t, LoadSDGCatalog())
}
