package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_UniqueKeys(t *testing.T) {
	seen := map[string]bool{}

	for _, section := range Schema {
		for _, category := range section.Categories {
			for _, item := range category.Items {
				key := section.ID + "/" + category.ID + "/" + item.ID
				assert.False(t, seen[key], "duplicate schema key %s", key)
				seen[key] = true
			}
		}
	}

	assert.NotEmpty(t, seen)
}

func TestParse_ValidBlob(t *testing.T) {
	data := Parse(`{"hoisting":{"brake":{"lining_wear":"V","lining_wear_defect":"01"}}}`)

	assert.Equal(t, "V", data.Get("hoisting", "brake", "lining_wear"))
	assert.Equal(t, "01", data.Get("hoisting", "brake", "lining_wear"+DefectSuffix))
}

func TestParse_MalformedBlobIsEmpty(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"hoisting": 12}`, "null", `[1,2,3]`} {
		data := Parse(raw)

		assert.NotNil(t, data, "raw=%q", raw)
		assert.Empty(t, data, "raw=%q", raw)
	}
}

func TestGet_MissingLevelsReturnEmpty(t *testing.T) {
	data := Parse(`{"hoisting":{"brake":{"lining_wear":"V"}}}`)

	assert.Equal(t, "", data.Get("hoisting", "brake", "stroke"))
	assert.Equal(t, "", data.Get("hoisting", "hook", "deformation"))
	assert.Equal(t, "", data.Get("travel", "wheels", "tread_wear"))
	assert.Equal(t, "", Data{}.Get("hoisting", "brake", "lining_wear"))
}

// Keys the schema does not know must not disturb lookups of known ones.
func TestParse_UnknownKeysIgnored(t *testing.T) {
	data := Parse(`{"legacy_section":{"x":{"y":"Z"}},"hoisting":{"brake":{"lining_wear":"△"}}}`)

	assert.Equal(t, "△", data.Get("hoisting", "brake", "lining_wear"))
}
