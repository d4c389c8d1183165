package codec

import (
	"net/url"
	"testing"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareLink_RoundTrip(t *testing.T) {
	s := sampleSchedule()

	link, err := BuildShareURL("https://example.com/schedule", s)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.NotEmpty(t, u.Query().Get(ShareParam))

	got, err := DecodeShareLink(link, "")
	require.NoError(t, err)
	assert.Equal(t, s.Title, got.Title)
	require.Len(t, got.Classes, 2)
	assert.Equal(t, s.Classes[0], got.Classes[0])
}

func TestShareLink_UnicodeTitleSurvives(t *testing.T) {
	s := domain.NewSchedule()
	s.Title = "Весна 2026 ✎"

	link, err := BuildShareURL("https://example.com/", s)
	require.NoError(t, err)

	got, err := DecodeShareLink(link, "")
	require.NoError(t, err)
	assert.Equal(t, s.Title, got.Title)
}

func TestDecodeShareLink_BarePayload(t *testing.T) {
	payload, err := EncodeSharePayload(sampleSchedule())
	require.NoError(t, err)

	got, err := DecodeShareLink(payload, "")
	require.NoError(t, err)
	assert.Equal(t, "Fall Semester", got.Title)
}

func TestDecodeShareLink_Failures(t *testing.T) {
	_, err := DecodeShareLink("https://example.com/?other=1", "")
	assert.Error(t, err)

	_, err = DecodeShareLink("https://example.com/?s=%%%not-base64", "")
	assert.Error(t, err)

	_, err = DecodeShareLink("", "")
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Fall Semester", "fall-semester"},
		{"  My   Schedule!  ", "my-schedule"},
		{"2026: Spring/Term #2", "2026-spring-term-2"},
		{"", "schedule"},
		{"---", "schedule"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
	assert.Equal(t, "fall-semester.json", ExportFileName("Fall Semester"))
}
