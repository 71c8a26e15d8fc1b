package synthesis

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
)

// Block is a headed list of lines inside a section.
type Block struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

// Section is a titled group of blocks.
type Section struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Self is one of the four "Я" of the portrait.
type Self struct {
	Label   string        `json:"label"`
	Caption string        `json:"caption"`
	Number  arcana.Number `json:"number"`
	Summary string        `json:"summary"`
}

// Portrait is the "who you really are" overview.
type Portrait struct {
	Intro    string   `json:"intro"`
	Selves   [4]Self  `json:"selves"`
	Problem  string   `json:"problem"`
	Solution []string `json:"solution"`
}

func BuildPortrait(s Set) Portrait {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual
	return Portrait{
		Intro: `У вас внутри живут 4 разных "Я". Они часто спорят между собой, поэтому вы в замешательстве!`,
		Selves: [4]Self{
			{`🔥 Ваше "Я-настоящий"`, "Вы — " + p.Title, p.Number, FirstSentences(p.Description, 2)},
			{`🎯 Ваше "Я-должен"`, "Предназначение — " + d.Title, d.Number, FirstSentences(d.Description, 2)},
			{`🎭 Ваше "Я-для-людей"`, "Люди видят — " + so.Title, so.Number, FirstSentences(so.Description, 2)},
			{`✨ Ваше "Я-глубинное"`, "Ваша душа — " + sp.Title, sp.Number, FirstSentences(sp.Description, 2)},
		},
		Problem: fmt.Sprintf(
			`Вы живёте как %s, люди ждут %s, а жизнь требует %s, и душа тянется к %s. Все 4 "Я" спорят между собой!`,
			p.Title, so.Title, d.Title, sp.Title),
		Solution: []string{
			fmt.Sprintf("Примите %s — это ваш характер", p.Title),
			fmt.Sprintf("Начните делать %s — хоть по чуть-чуть", d.Title),
			fmt.Sprintf("Снимите маску %s — перестаньте притворяться", so.Title),
			fmt.Sprintf("Найдите смысл через %s", sp.Title),
		},
	}
}

// Professional returns the guidance sections for psychologists, HR,
// nutritionists and business coaches, in that order.
func Professional(s Set) []Section {
	return []Section{Psychologist(s), HR(s), Nutritionist(s), BusinessCoach(s)}
}

func arcanum(d arcana.Description) string {
	return fmt.Sprintf("Аркан %d (%s)", d.Number, d.Title)
}

func Psychologist(s Set) Section {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual
	professions := Professions(d)

	return Section{
		Title: "🧠 Для психологов и коучей",
		Blocks: []Block{
			{"🎯 Главная проблема клиента:", []string{
				"Внутренний конфликт 4-х энергий:",
				"• " + arcanum(p) + " — как он себя ощущает, его эго",
				"• " + arcanum(d) + " — чего от него ждёт жизнь",
				"• " + arcanum(so) + " — маска для общества",
				"• " + arcanum(sp) + " — его глубинная суть",
				fmt.Sprintf("Человек живёт через %s, общество видит %s, но жизнь требует %s, а душа тянется к %s. Отсюда внутренний разлад.",
					p.Title, so.Title, d.Title, sp.Title),
			}},
			{"📿 Кармические задачи:", []string{
				fmt.Sprintf("Принять %s как истинное предназначение", arcanum(d)),
				fmt.Sprintf("Интегрировать %s с %s — использовать личные качества для предназначения", p.Title, d.Title),
				fmt.Sprintf("Разоблачить %s как ложную идентичность — снять маску", so.Title),
				fmt.Sprintf("Активировать %s — это связь с высшим и смысл жизни", sp.Title),
			}},
			{"💬 Как говорить с клиентом:", []string{
				fmt.Sprintf("✅ Используйте язык %s — это его родной язык", p.Title),
				fmt.Sprintf("⚠️ НЕ давите на %s напрямую — он убежит", d.Title),
				fmt.Sprintf(`🎭 Разоблачите %s как маску: "Это не ты, это защита"`, so.Title),
				fmt.Sprintf("🙏 Активируйте %s через духовные практики", sp.Title),
			}},
			{"📋 План терапии (пошагово):", []string{
				fmt.Sprintf("ШАГ 1 (Сессии 1-3): Принятие %s — это его данность, не враг", p.Title),
				fmt.Sprintf("ШАГ 2 (Сессии 4-6): Разоблачение %s — когда и зачем появилась маска", so.Title),
				fmt.Sprintf("ШАГ 3 (Сессии 7-10): Интеграция %s — принять как истинный путь", d.Title),
				fmt.Sprintf("ШАГ 4 (Сессии 11-15): Активация %s — духовные практики", sp.Title),
				"ШАГ 5 (Сессии 16+): Жизнь из Единства — все 4 аркана работают вместе",
			}},
			{"🔮 Прогноз:", []string{
				fmt.Sprintf("✅ ЕСЛИ ПРИМЕТ: через 6-12 месяцев выход на предназначение (%s), деньги потоком, гармония в отношениях", professions),
				fmt.Sprintf("⚠️ ЕСЛИ НЕ ПРИМЕТ: кризисы, болезни, потеря работы, разрывы — судьба будет ломать до принятия %s", d.Title),
			}},
		},
	}
}

func HR(s Set) Section {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual

	return Section{
		Title: "👨‍💼 Для HR и рекрутеров",
		Blocks: []Block{
			{"✅ Идеальная должность:", []string{
				arcanum(d) + " — это его ДНК",
				"Лучшие роли: " + Professions(d),
				"Почему именно это: если должность не соответствует — уйдёт через 3-6 месяцев",
			}},
			{"🤝 Анализ команды:", []string{
				arcanum(so) + " — так его видят коллеги",
				fmt.Sprintf("Риск конфликтов: если в команде давят на %s — он уйдёт", p.Title),
			}},
			{"💰 Мотивация и удержание:", []string{
				fmt.Sprintf("НЕ мотивирован деньгами, если работа противоречит %s", d.Title),
				"Как удержать:",
				fmt.Sprintf("Давать задачи по %s", d.Title),
				fmt.Sprintf("Признавать его %s", p.Title),
				fmt.Sprintf("Позволять проявлять %s", so.Title),
				fmt.Sprintf("Дать смысл работы (%s)", sp.Title),
			}},
			{"🚀 Онбординг (90 дней):", []string{
				fmt.Sprintf("День 1-7: Представить через %s, показать смысл работы", so.Title),
				fmt.Sprintf("День 8-30: Дать задачи на %s, вводить в %s", p.Title, d.Title),
				fmt.Sprintf("День 31-60: Оценить соответствие %s, если нет — расстаться", d.Title),
				fmt.Sprintf("День 61-90: Стабилизация, работа через %s", d.Title),
			}},
			{"⚠️ Риски и митигация:", []string{
				fmt.Sprintf("РИСК #1: Уход через 3-6 месяцев (роль не соответствует %s)", d.Title),
				fmt.Sprintf("РИСК #2: Конфликты (давят на %s)", p.Title),
				fmt.Sprintf("РИСК #3: Выгорание (нет смысла, %s не активирован)", sp.Title),
			}},
			{"✅ Вердикт:", []string{
				fmt.Sprintf("НАНИМАТЬ, ЕСЛИ: должность соответствует %s минимум 70%%", d.Title),
				fmt.Sprintf("НЕ НАНИМАТЬ, ЕСЛИ: роль противоречит %s — уйдёт через 3-6 месяцев", d.Title),
			}},
		},
	}
}

func Nutritionist(s Set) Section {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual

	return Section{
		Title: "🍎 Для нутрициологов",
		Blocks: []Block{
			{"🔥 Диагностика — почему не худеет:", []string{
				"🔴 УРОВЕНЬ 1: " + arcanum(p) + " — ФИЗИОЛОГИЯ",
				"Что делать: обследование, анализы, лечить физику первым делом",
				"🟠 УРОВЕНЬ 2: " + arcanum(d) + " — КАРМИЧЕСКИЙ БЛОК",
				fmt.Sprintf("Что происходит: вес — защита от реализации %s", d.Title),
				"Что делать: работа с психологом, разблокировать страх предназначения",
				"🟡 УРОВЕНЬ 3: " + arcanum(sp) + " — ПСИХОСОМАТИКА",
				"Что происходит: заедает эмоции, духовную пустоту",
				"Что делать: духовные практики, медитации, поиск смысла",
				"🟣 УРОВЕНЬ 4: " + arcanum(so) + " — СОЦИАЛЬНОЕ ДАВЛЕНИЕ",
				fmt.Sprintf("Конфликт: общество видит %s, но внутри %s", so.Title, p.Title),
				fmt.Sprintf("Что делать: снять маску, жить как %s", p.Title),
			}},
			{"🥗 План питания (90 дней):", []string{
				"ЧТО ИСКЛЮЧИТЬ:",
				fmt.Sprintf("• Для %d: тяжёлая пища, жирное, мучное", p.Number),
				fmt.Sprintf("• Для %d: сахар, быстрые углеводы", d.Number),
				fmt.Sprintf("• Для %d: алкоголь, кофеин", sp.Number),
				"ЧТО ДОБАВИТЬ:",
				"• Белок 1.5-2г/кг, клетчатка 500г+ овощей, вода 30-40мл/кг",
			}},
			{"📋 Комплексный план:", []string{
				"Неделя 1-2: Диагностика (анализы, УЗИ, замеры)",
				"Неделя 3-4: Запуск (новый рацион, лечение, психолог, медитации)",
				"Неделя 5-12: Основная работа (диета + движение + психолог + практики)",
				"РЕЗУЛЬТАТ: -8-12 кг за 90 дней + улучшение здоровья",
			}},
			{"🔑 Ключ к успеху:", []string{
				fmt.Sprintf(`"Вес — это защита от реализации %s. Пока не примешь предназначение, тело будет держать вес. Когда станешь %s, вес уйдёт сам."`, d.Title, d.Title),
			}},
		},
	}
}

func BusinessCoach(s Set) Section {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual
	professions := Professions(d)

	return Section{
		Title: "📈 Для бизнес-коучей",
		Blocks: []Block{
			{"💸 Диагностика — почему нет денег:", []string{
				fmt.Sprintf("🔴 КОРЕНЬ ПРОБЛЕМЫ: работает через %s, но деньги приходят ТОЛЬКО через %s", p.Title, d.Title),
				fmt.Sprintf("• Аркан %d: работает через %s — НЕ денежный путь", p.Number, p.Title),
				fmt.Sprintf("• Аркан %d: истинное предназначение %s, пока не принят — денег нет", d.Number, professions),
				fmt.Sprintf("• Аркан %d: продаёт через маску %s, но это фасад", so.Number, so.Title),
				fmt.Sprintf("• Аркан %d: денежные блоки, страх богатства, вина за деньги", sp.Number),
			}},
			{"🎯 Правильная ниша — 100% попадание:", []string{
				arcanum(d),
				"Ниши: " + professions,
				"Почему: это кармическое предназначение, вселенная помогает ТОЛЬКО здесь",
				"Если сейчас НЕ это — сменить нишу за 30 дней!",
			}},
			{"🚀 План ×10 доход (90 дней):", []string{
				fmt.Sprintf("ШАГ 1 (Неделя 1-2): Признать, что %s — не путь денег", p.Title),
				fmt.Sprintf("ШАГ 2 (Неделя 3-4): Принять %s как денежное предназначение", d.Title),
				fmt.Sprintf("ШАГ 3 (Неделя 5-6): Сменить нишу на %s, запустить MVP", professions),
				fmt.Sprintf("ШАГ 4 (Неделя 7-8): Использовать %s для продаж", so.Title),
				fmt.Sprintf("ШАГ 5 (Неделя 9-12): Очистить %s — убрать денежные блоки", sp.Title),
				"РЕЗУЛЬТАТ: доход ×3-5 через 90 дней, ×10-15 через год",
			}},
			{"💎 Денежные блоки:", []string{
				fmt.Sprintf(`Вопрос клиенту: "Что плохого случится, если станешь богатым через %s?"`, d.Title),
				`Типичные ответы: "Потеряю друзей", "Стану плохим", "Меня ограбят"`,
				fmt.Sprintf("Как очистить: осознать блок через %s, простить, отпустить, заменить на новую установку", sp.Title),
			}},
			{"🔮 Прогноз:", []string{
				"✅ ЕСЛИ СЛЕДУЕТ: месяц 1 — доход ×1.5, месяц 2-3 — ×3-5, месяц 4-6 — ×5-7, месяц 7-12 — ×10-15",
				"⚠️ ЕСЛИ НЕ МЕНЯЕТ НИШУ: доход стоит/падает, выгорание, бизнес закроется",
			}},
			{"🔑 Ключ к богатству:", []string{
				fmt.Sprintf(`"Деньги приходят, когда живёшь через %s. Это твой денежный код. Вселенная даст деньги ТОЛЬКО за %s. Прими %s, очисти %s, используй %s для продаж — это формула богатства."`,
					d.Title, professions, d.Title, sp.Title, so.Title),
			}},
		},
	}
}
