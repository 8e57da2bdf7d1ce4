package validators

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Photo    *string `json:"photo" binding:"omitempty,imagedata|imageurl" validate:"omitempty,imagedata|imageurl"`
	DateTime string  `json:"dateTime" validate:"required,datestring"`
	Status   string  `json:"status" validate:"omitempty,appointment_status"`
	Phone    string  `json:"phone" validate:"required,min=10,max=11"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestImagePatterns(t *testing.T) {
	assert.True(t, IsImageData("data:image/png;base64,iVBORw0KGgo="))
	assert.True(t, IsImageData("data:image/jpeg;base64,/9j/4AAQ"))
	assert.False(t, IsImageData("data:image/gif;base64,R0lGOD"))
	assert.False(t, IsImageData("data:image/png;base64,not base64!"))

	assert.True(t, IsImageURL("https://cdn.example.com/a/b.webp?v=1"))
	assert.True(t, IsImageURL("http://127.0.0.1:9000/bucket/x.png"))
	assert.False(t, IsImageURL("ftp://example.com/x.png"))
	assert.False(t, IsImageURL("example.com/x.png"))
}

func TestValidRequestPasses(t *testing.T) {
	v := newValidate(t)
	photo := "https://example.com/p.png"

	err := v.Struct(sampleRequest{
		Photo:    &photo,
		DateTime: "2024-01-15T10:00:00Z",
		Status:   "confirmed",
		Phone:    "11999999999",
	})
	assert.NoError(t, err)
}

func TestFieldsUsesJSONNames(t *testing.T) {
	v := newValidate(t)
	photo := "not-an-image"

	err := v.Struct(sampleRequest{
		Photo:    &photo,
		DateTime: "tomorrow",
		Status:   "done",
		Phone:    "123",
	})
	require.Error(t, err)

	fields := Fields(err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
		assert.NotEmpty(t, f.Message)
	}
	assert.ElementsMatch(t, []string{"photo", "dateTime", "status", "phone"}, names)
}

func TestFieldsMalformedBody(t *testing.T) {
	var dst map[string]any
	err := json.Unmarshal([]byte("{broken"), &dst)

	fields := Fields(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Field)
}
