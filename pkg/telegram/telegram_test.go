package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-relay-backend/config"
	"salon-relay-backend/pkg/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(baseURL string) *telegram.Service {
	return telegram.NewService(&config.Config{
		TelegramBotToken:       "test-token",
		TelegramChatID:         "-100200300",
		TelegramAPIBaseURL:     baseURL,
		TelegramTimeoutSeconds: 2,
	})
}

func TestSendBuildsBotAPIRequest(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]string
		calls   int
	)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer upstream.Close()

	svc := newTestService(upstream.URL)
	err := svc.Send(context.Background(), "📩 Новая заявка с сайта!\n\n👤 Имя: Ann\n📱 Контакт: ann@x.com\n\n🔧 Услуги:\n  • Haircut")

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, map[string]string{
		"chat_id":    "-100200300",
		"text":       "📩 Новая заявка с сайта!\n\n👤 Имя: Ann\n📱 Контакт: ann@x.com\n\n🔧 Услуги:\n  • Haircut",
		"parse_mode": "HTML",
	}, gotBody)
}

func TestSendUpstreamFailure(t *testing.T) {
	t.Run("non-2xx with description", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
		}))
		defer upstream.Close()

		err := newTestService(upstream.URL).Send(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "Forbidden: bot was blocked by the user")
	})

	t.Run("non-2xx without description", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer upstream.Close()

		err := newTestService(upstream.URL).Send(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("network failure", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		upstream.Close() // refuse connections

		err := newTestService(upstream.URL).Send(context.Background(), "hello")
		assert.Error(t, err)
	})
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, newTestService("http://example.invalid").IsConfigured())

	missingToken := telegram.NewService(&config.Config{TelegramChatID: "42", TelegramTimeoutSeconds: 1})
	assert.False(t, missingToken.IsConfigured())

	missingChat := telegram.NewService(&config.Config{TelegramBotToken: "t", TelegramTimeoutSeconds: 1})
	assert.False(t, missingChat.IsConfigured())
}
