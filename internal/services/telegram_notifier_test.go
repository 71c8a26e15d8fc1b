package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
)

type capturedCall struct {
	path string
	body map[string]interface{}
}

func telegramServer(t *testing.T, ok bool) (*httptest.Server, *[]capturedCall) {
	t.Helper()
	calls := &[]capturedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		*calls = append(*calls, capturedCall{path: r.URL.Path, body: body})
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestNotifyPaymentRequest(t *testing.T) {
	srv, calls := telegramServer(t, true)
	n := NewTelegramNotifier(srv.URL, "TOKEN", "-100", "https://example.org/admin", 0)

	err := n.NotifyPaymentRequest(context.Background(), &models.PaymentRequest{
		ID: 42, Email: "anna@example.com", PlanType: "month", Amount: 1000,
	})
	require.NoError(t, err)
	require.Len(t, *calls, 1)

	call := (*calls)[0]
	assert.Equal(t, "/botTOKEN/sendMessage", call.path)
	assert.Equal(t, "-100", call.body["chat_id"])
	assert.Equal(t, "Markdown", call.body["parse_mode"])
	assert.Contains(t, call.body["text"], "Новая заявка #42")
	assert.Contains(t, call.body["text"], "1 месяц безлимит")

	keyboard := call.body["reply_markup"].(map[string]interface{})["inline_keyboard"].([]interface{})
	row := keyboard[0].([]interface{})
	assert.Equal(t, "approve_42", row[0].(map[string]interface{})["callback_data"])
	assert.Equal(t, "reject_42", row[1].(map[string]interface{})["callback_data"])
}

func TestTelegramErrorsSurface(t *testing.T) {
	srv, _ := telegramServer(t, false)
	n := NewTelegramNotifier(srv.URL, "TOKEN", "-100", "", 0)

	err := n.AnswerCallback(context.Background(), "cb", "ok", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestEditMessage(t *testing.T) {
	srv, calls := telegramServer(t, true)
	n := NewTelegramNotifier(srv.URL, "TOKEN", "-100", "", 0)

	require.NoError(t, n.EditMessage(context.Background(), -100, 7, "done"))
	call := (*calls)[0]
	assert.Equal(t, "/botTOKEN/editMessageText", call.path)
	assert.Equal(t, float64(7), call.body["message_id"])
	assert.Equal(t, "done", call.body["text"])
	_, hasParseMode := call.body["parse_mode"]
	assert.False(t, hasParseMode, "edits carry plain text")
}

func TestPaymentMessageEscapesUserInput(t *testing.T) {
	msg := PaymentMessage(&models.PaymentRequest{
		ID: 6, Email: "anna_k*@example.com", Phone: "[+7]", PlanType: "month", Amount: 1000,
	}, "")

	assert.Contains(t, msg, "📧 Email: anna\\_k\\*@example.com")
	assert.Contains(t, msg, "📱 Телефон: \\[+7]")
}

func TestPaymentMessage(t *testing.T) {
	msg := PaymentMessage(&models.PaymentRequest{
		ID: 5, Email: "a@b.c", Phone: "+7", PlanType: "single", Amount: 200,
		ScreenshotURL: "https://cdn/x.jpg",
	}, "https://site/admin")

	assert.Equal(t, "🔔 *Новая заявка #5*\n\n📧 Email: a@b.c\n📱 Телефон: +7\n💳 Тариф: Разовая расшифровка\n💰 Сумма: *200 ₽*\n\n📸 [Скриншот оплаты](https://cdn/x.jpg)\n\n[Открыть админ-панель](https://site/admin)", msg)
}
