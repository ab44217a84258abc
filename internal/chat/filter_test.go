package chat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localchat/internal/models"
)

func filterFixture() []models.Message {
	caption := "Holiday Sunset"
	noCaption := (*string)(nil)
	return []models.Message{
		{ID: 1, Content: "Hello Bob", Type: models.MessageTypeText},
		{ID: 2, Content: "see you tomorrow", Type: models.MessageTypeText},
		{ID: 3, Content: "/storage/img1.jpg", Type: models.MessageTypeImage, Caption: &caption},
		{ID: 4, Content: "/storage/img2.jpg", Type: models.MessageTypeImage, Caption: noCaption},
	}
}

func TestFilterEmptyQueryReturnsFullList(t *testing.T) {
	full := filterFixture()
	got := FilterMessages(full, "")
	require.Equal(t, full, got)
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	got := FilterMessages(filterFixture(), "HELLO")
	require.Len(t, got, 1)
	require.EqualValues(t, 1, got[0].ID)
}

func TestFilterMatchesImageCaption(t *testing.T) {
	got := FilterMessages(filterFixture(), "sunset")
	require.Len(t, got, 1)
	require.EqualValues(t, 3, got[0].ID)
}

func TestFilterSkipsCaptionlessImages(t *testing.T) {
	got := FilterMessages(filterFixture(), "img2")
	require.Empty(t, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	once := FilterMessages(filterFixture(), "o")
	twice := FilterMessages(once, "o")
	require.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	full := filterFixture()
	_ = FilterMessages(full, "hello")
	require.Equal(t, filterFixture(), full)
}
