package messenger_test

import (
	"net/url"
	"strings"
	"testing"

	"borteh/internal/infra/messenger"
	"borteh/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppMessenger_BuildsDeepLink(t *testing.T) {
	m := messenger.NewWhatsAppMessenger()

	link, err := m.Send(usecase.OrderMessage{
		RecipientAddress: "23276000000",
		Body:             "hello world & more",
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/23276000000?text="))

	//本文はURLエンコードされて戻せる
	u, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "hello world & more", u.Query().Get("text"))
}

func TestWhatsAppMessenger_RequiresRecipient(t *testing.T) {
	m := messenger.NewWhatsAppMessenger()

	_, err := m.Send(usecase.OrderMessage{RecipientAddress: "  ", Body: "x"})
	assert.Error(t, err)
}
