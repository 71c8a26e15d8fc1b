package handlers

import (
	"github.com/gofiber/fiber/v2"
)

const legalStyle = `<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>`

type LegalHandler struct {
	origin string
}

func NewLegalHandler(origin string) *LegalHandler {
	return &LegalHandler{origin: origin}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="ru"><head><meta charset="utf-8"><title>Политика конфиденциальности - Матрица судьбы</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Политика конфиденциальности</h1>
<p>Последнее обновление: октябрь 2026</p>
<h2>Какие данные мы собираем</h2>
<p>Email и телефон, указанные в заявке на оплату, скриншот перевода, а также IP-адрес и тип устройства при входе по подписке.</p>
<h2>Как мы используем данные</h2>
<p>Данные нужны только для выдачи доступа к расшифровке матрицы, ограничения числа устройств и связи с вами по заявке.</p>
<h2>Хранение</h2>
<p>Дата рождения и имя используются для расчёта и сохраняются в истории расчётов только для вашего email. Мы не передаём данные третьим лицам.</p>
<h2>Удаление</h2>
<p>Историю расчётов можно очистить в любой момент. Для удаления остальных данных напишите нам.</p>
<h2>Контакты</h2>
<p>` + h.origin + `</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="ru"><head><meta charset="utf-8"><title>Пользовательское соглашение - Матрица судьбы</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Пользовательское соглашение</h1>
<p>Последнее обновление: октябрь 2026</p>
<h2>Принятие условий</h2>
<p>Пользуясь сервисом ` + h.origin + `, вы соглашаетесь с этими условиями.</p>
<h2>Характер услуги</h2>
<p>Расшифровка матрицы судьбы носит развлекательный и ознакомительный характер и не заменяет консультацию врача, психолога или финансового специалиста.</p>
<h2>Оплата и доступ</h2>
<p>Доступ выдаётся после проверки заявки администратором. Разовая расшифровка даёт одно скачивание, подписка действует указанный срок на ограниченном числе устройств.</p>
<h2>Прекращение доступа</h2>
<p>Мы можем отозвать доступ при нарушении этих условий.</p>
</body></html>`)
}
