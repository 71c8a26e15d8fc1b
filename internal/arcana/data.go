package arcana

// entry is the authoring shape of one arcanum. Long-form texts are
// assembled from it by compose so that every labeled marker in the text
// matches a structured field exactly.
type entry struct {
	Title       string
	SimpleName  string
	Description string

	Health          string
	HealthZones     string
	HealthRootCause string

	Relationships       string
	RelationshipStyle   string
	RelationshipNeeds   string
	DestructivePatterns string

	Finance       string
	IncomeSources string
	Professions   string
}

var entries = [Count]entry{
	{
		Title:               "Маг",
		SimpleName:          "Творец",
		Description:         "Вы пришли в этот мир, чтобы создавать и трансформировать реальность. Ваше предназначение — быть проводником энергии созидания. Любая идея в ваших руках быстро становится делом.",
		Health:              "Важно работать с горловой чакрой и давать выход словам.",
		HealthZones:         "щитовидная железа, горло, нервная система",
		HealthRootCause:     "непроявленность и невысказанные идеи",
		Relationships:       "Вам нужен партнер, который принимает вашу силу и индивидуальность.",
		RelationshipStyle:   "инициатор, который ведет и вдохновляет",
		RelationshipNeeds:   "восхищение, свобода действий, общие проекты",
		DestructivePatterns: "манипуляции, желание контролировать партнера",
		Finance:             "Деньги приходят через творчество и уникальные проекты.",
		IncomeSources:       "авторские проекты, запуск продуктов, публичные выступления",
		Professions:         "предприниматель, маркетолог, блогер, продюсер, изобретатель",
	},
	{
		Title:               "Жрица",
		SimpleName:          "Мудрец",
		Description:         "Ваше предназначение — быть мудрым наставником и хранителем знаний. Вы чувствуете больше, чем говорите вслух. Интуиция для вас надежнее любой логики.",
		Health:              "Тело остро реагирует на подавленные чувства.",
		HealthZones:         "гормональная система, женская энергия, сон",
		HealthRootCause:     "отказ доверять интуиции и жизнь по чужим правилам",
		Relationships:       "Нужен глубокий эмоциональный контакт и духовная связь.",
		RelationshipStyle:   "тихая глубина и доверие без слов",
		RelationshipNeeds:   "безопасность, уважение к личному пространству, искренность",
		DestructivePatterns: "скрытность, молчаливые обиды, уход в себя",
		Finance:             "Деньги приходят через обучение, консультации, работу с людьми.",
		IncomeSources:       "консультации, обучение, экспертные материалы",
		Professions:         "психолог, преподаватель, исследователь, астролог, аналитик",
	},
	{
		Title:               "Императрица",
		SimpleName:          "Хозяйка изобилия",
		Description:         "Вы — источник изобилия, заботы и материнской энергии. Предназначение — создавать и взращивать. Рядом с вами расцветают люди и идеи.",
		Health:              "Тело честно показывает, сколько радости в вашей жизни.",
		HealthZones:         "репродуктивная система, вес, кожа",
		HealthRootCause:     "отказ от удовольствия и самообесценивание",
		Relationships:       "Вам важно проявлять заботу, но не растворяться в партнере.",
		RelationshipStyle:   "забота, уют и щедрость",
		RelationshipNeeds:   "восхищение, подарки, душевная теплота",
		DestructivePatterns: "гиперопека, ревность, растворение в партнере",
		Finance:             "Изобилие приходит через щедрость и создание красоты.",
		IncomeSources:       "красота, комфорт, продукты для семьи и дома",
		Professions:         "дизайнер, стилист, флорист, кондитер, организатор праздников",
	},
	{
		Title:               "Император",
		SimpleName:          "Лидер",
		Description:         "Ваше предназначение — строить структуры, быть лидером и опорой для других. Вы видите систему там, где другие видят хаос. Ответственность для вас естественна.",
		Health:              "Нагрузка копится в опорных зонах тела.",
		HealthZones:         "позвоночник, кости, суставы",
		HealthRootCause:     "непринятие ответственности или желание тащить все одному",
		Relationships:       "Вам нужен равный партнер, с которым можно строить империю.",
		RelationshipStyle:   "надежность, стабильность и ясные правила",
		RelationshipNeeds:   "уважение, верность, признание авторитета",
		DestructivePatterns: "деспотизм, холодность, подавление партнера",
		Finance:             "Деньги приходят через системный подход и управление.",
		IncomeSources:       "управление, собственный бизнес, недвижимость",
		Professions:         "руководитель, управленец, чиновник, военный, застройщик",
	},
	{
		Title:               "Иерофант",
		SimpleName:          "Учитель",
		Description:         "Вы — учитель и хранитель традиций. Предназначение — передавать мудрость. Люди тянутся к вам за советом.",
		Health:              "Тело откликается на неумение слышать себя и других.",
		HealthZones:         "слух, горло, печень",
		HealthRootCause:     "догматизм и неумение слышать истину",
		Relationships:       "Важны общие ценности и духовное развитие.",
		RelationshipStyle:   "наставничество и верность традициям",
		RelationshipNeeds:   "общие ценности, духовный рост, семейные ритуалы",
		DestructivePatterns: "морализаторство, нравоучения, жесткие рамки",
		Finance:             "Доход через образование, консультации, наставничество.",
		IncomeSources:       "обучение, наставничество, авторские курсы",
		Professions:         "педагог, юрист, священнослужитель, коуч, методист",
	},
	{
		Title:               "Влюбленные",
		SimpleName:          "Романтик",
		Description:         "Ваше предназначение — учиться делать выбор и строить гармоничные отношения. Вы чувствуете красоту и людей. Через любовь вы раскрываетесь сильнее всего.",
		Health:              "Сердце реагирует на каждую несделанную развилку.",
		HealthZones:         "сердечно-сосудистая система, давление",
		HealthRootCause:     "страх выбора и жизнь чужими решениями",
		Relationships:       "Необходимо проработать страх выбора и зависимости.",
		RelationshipStyle:   "романтика, чувственность и партнерство",
		RelationshipNeeds:   "внимание, нежность, совместные решения",
		DestructivePatterns: "зависимость от партнера, метания между выборами",
		Finance:             "Деньги через партнерство и совместные проекты.",
		IncomeSources:       "партнерский бизнес, продажи, работа в паре",
		Professions:         "менеджер по продажам, дизайнер, актер, свадебный организатор, HR",
	},
	{
		Title:               "Колесница",
		SimpleName:          "Воин",
		Description:         "Вы — воин и победитель. Предназначение — двигаться вперед, преодолевая препятствия. Цель придает вам силы.",
		Health:              "Тело требует движения и дороги.",
		HealthZones:         "ноги, суставы, мышцы",
		HealthRootCause:     "остановка и отсутствие движения вперед",
		Relationships:       "Нужен партнер, который поддержит ваши амбиции.",
		RelationshipStyle:   "страсть, движение и совместные цели",
		RelationshipNeeds:   "поддержка амбиций, свобода передвижения, драйв",
		DestructivePatterns: "бегство от близости, вечная гонка за целью",
		Finance:             "Деньги приходят через активные действия и достижения.",
		IncomeSources:       "проекты с результатом, командировки, спорт",
		Professions:         "логист, водитель, спортсмен, военный, менеджер проектов",
	},
	{
		Title:               "Справедливость",
		SimpleName:          "Судья",
		Description:         "Ваше предназначение — восстанавливать баланс и справедливость в мире. Вы чувствуете фальшь мгновенно. Порядок и честность для вас основа жизни.",
		Health:              "Тело копит непрожитые обиды и несправедливости.",
		HealthZones:         "почки, мочевыделительная система, кожа",
		HealthRootCause:     "дисбаланс в отношениях и нарушенные договоренности",
		Relationships:       "Важны честность и равноправие в отношениях.",
		RelationshipStyle:   "партнерство равных и четкие договоренности",
		RelationshipNeeds:   "честность, равноправие, прозрачность",
		DestructivePatterns: "осуждение, мелочный счет, холодная дистанция",
		Finance:             "Доход через юридическую сферу, консалтинг, восстановление справедливости.",
		IncomeSources:       "консалтинг, экспертиза, документооборот",
		Professions:         "юрист, бухгалтер, аудитор, нотариус, медиатор",
	},
	{
		Title:               "Отшельник",
		SimpleName:          "Искатель",
		Description:         "Вы пришли обрести мудрость через одиночество и самопознание. Глубина для вас важнее широты. Ваши знания созревают в тишине.",
		Health:              "Тело просит уединения и восстановления.",
		HealthZones:         "зрение, нервная система, позвоночник",
		HealthRootCause:     "избегание уединения и перегрузка людьми",
		Relationships:       "Вам нужно время наедине с собой, партнер должен это понимать.",
		RelationshipStyle:   "глубокая связь при уважении к тишине",
		RelationshipNeeds:   "личное пространство, интеллектуальная близость, терпение",
		DestructivePatterns: "изоляция, отстраненность, закрытость",
		Finance:             "Деньги через экспертность, консультации, индивидуальную работу.",
		IncomeSources:       "экспертиза, исследования, индивидуальные консультации",
		Professions:         "ученый, программист, философ, писатель, эксперт",
	},
	{
		Title:               "Колесо Фортуны",
		SimpleName:          "Везунчик",
		Description:         "Ваша жизнь полна циклов и изменений. Предназначение — принять изменчивость. Удача приходит к вам, когда вы открыты переменам.",
		Health:              "Самочувствие меняется вместе с жизненными циклами.",
		HealthZones:         "обмен веществ, сосуды, нестабильное давление",
		HealthRootCause:     "сопротивление переменам и страх неизвестности",
		Relationships:       "Отношения проходят через трансформации и обновления.",
		RelationshipStyle:   "легкость, путешествия и перемены",
		RelationshipNeeds:   "новизна, совместные поездки, гибкость",
		DestructivePatterns: "непостоянство, перекладывание ответственности на судьбу",
		Finance:             "Финансовые циклы, взлеты и падения, важно создавать подушку безопасности.",
		IncomeSources:       "торговля, инвестиции, туризм",
		Professions:         "трейдер, турагент, предприниматель, риелтор, event-менеджер",
	},
	{
		Title:               "Сила",
		SimpleName:          "Укротитель",
		Description:         "Ваше предназначение — укрощать внутренних демонов и проявлять истинную силу. У вас огромный запас энергии. Мягкость делает вашу силу непобедимой.",
		Health:              "Подавленная энергия бьет по телу.",
		HealthZones:         "мышцы, сердце, давление",
		HealthRootCause:     "подавление энергии и гнева",
		Relationships:       "Важно не подавлять партнера своей силой.",
		RelationshipStyle:   "страстная преданность и защита",
		RelationshipNeeds:   "признание силы, физическая близость, активность вдвоем",
		DestructivePatterns: "вспышки гнева, подавление партнера",
		Finance:             "Деньги через волевые усилия и преодоление страхов.",
		IncomeSources:       "спорт, сложные проекты, работа с телом",
		Professions:         "тренер, спасатель, хирург, кинолог, фитнес-инструктор",
	},
	{
		Title:               "Повешенный",
		SimpleName:          "Мудрец-наблюдатель",
		Description:         "Вы пришли научиться жертвенности и смотреть на мир под другим углом. Вы видите то, что скрыто от других. Пауза для вас источник прозрений.",
		Health:              "Застой в жизни становится застоем в теле.",
		HealthZones:         "кровообращение, вены, ноги",
		HealthRootCause:     "застревание в ситуациях и роль жертвы",
		Relationships:       "Необходимо проработать жертвенность и созависимость.",
		RelationshipStyle:   "самоотдача и служение партнеру",
		RelationshipNeeds:   "благодарность, взаимность, понимание",
		DestructivePatterns: "жертвенность, созависимость, ожидание спасения",
		Finance:             "Деньги могут приходить неожиданными путями, важно отпустить контроль.",
		IncomeSources:       "помогающие профессии, творчество, духовные практики",
		Professions:         "волонтер, медик, психолог, художник, социальный работник",
	},
	{
		Title:               "Смерть",
		SimpleName:          "Трансформатор",
		Description:         "Ваше предназначение — трансформация и освобождение от старого. Вы умеете начинать с нуля. Кризисы делают вас сильнее.",
		Health:              "Кризисы здоровья становятся точками перемен.",
		HealthZones:         "органы выделения, кровь, иммунитет",
		HealthRootCause:     "цепляние за отжившее и страх перемен",
		Relationships:       "Отношения проходят через кардинальные трансформации.",
		RelationshipStyle:   "глубина, интенсивность и обновление",
		RelationshipNeeds:   "честность, готовность меняться вместе, глубина",
		DestructivePatterns: "разрывы на пике, уничтожение близости",
		Finance:             "Финансовые перерождения, важно отпускать старые источники дохода.",
		IncomeSources:       "антикризисные проекты, реструктуризация, работа с утратами",
		Professions:         "антикризисный менеджер, реаниматолог, психотерапевт, ритуальный агент, реставратор",
	},
	{
		Title:               "Умеренность",
		SimpleName:          "Алхимик",
		Description:         "Вы — алхимик, соединяющий противоположности. Предназначение — баланс. Вы умеете примирять и исцелять.",
		Health:              "Телу нужна мера во всем.",
		HealthZones:         "обмен веществ, печень, кровь",
		HealthRootCause:     "крайности и нарушение меры",
		Relationships:       "Важно найти баланс между отдаванием и принятием.",
		RelationshipStyle:   "гармония, терпение и спокойствие",
		RelationshipNeeds:   "мир в доме, равновесие, мягкость",
		DestructivePatterns: "избегание конфликтов, подавление чувств",
		Finance:             "Деньги через умеренность и разумное распределение ресурсов.",
		IncomeSources:       "здоровье, гармонизация, посредничество",
		Professions:         "врач, нутрициолог, медиатор, арт-терапевт, фармацевт",
	},
	{
		Title:               "Дьявол",
		SimpleName:          "Искуситель",
		Description:         "Ваша задача — освободиться от зависимостей и материальных иллюзий. У вас мощная харизма и притяжение. Вы умеете влиять на людей.",
		Health:              "Удовольствия легко становятся зависимостями.",
		HealthZones:         "зависимости, половая система, поджелудочная",
		HealthRootCause:     "бегство в удовольствия от внутренней пустоты",
		Relationships:       "Проработка созависимости и токсичных паттернов.",
		RelationshipStyle:   "магнетизм, страсть и игра",
		RelationshipNeeds:   "страсть, восхищение, острые ощущения",
		DestructivePatterns: "созависимость, токсичные связи, манипуляции",
		Finance:             "Деньги через трансформацию теневых сторон в силу.",
		IncomeSources:       "большие деньги, влияние, индустрия удовольствий",
		Professions:         "финансист, маркетолог, политтехнолог, ресторатор, продюсер",
	},
	{
		Title:               "Башня",
		SimpleName:          "Разрушитель",
		Description:         "Вы — разрушитель старых структур. Предназначение — создавать через разрушение. После вас остается новое.",
		Health:              "Острые состояния приходят как сигналы к изменениям.",
		HealthZones:         "травмы, сосуды головы, острые воспаления",
		HealthRootCause:     "накопленное напряжение и отказ менять устаревшее",
		Relationships:       "Отношения могут резко меняться, важна гибкость.",
		RelationshipStyle:   "яркость, вспышки и обновления",
		RelationshipNeeds:   "честность, свобода, выплеск эмоций",
		DestructivePatterns: "взрывы ссор, разрушение на эмоциях",
		Finance:             "Финансовые потрясения ведут к новым возможностям.",
		IncomeSources:       "стройка, реорганизация, проекты с нуля",
		Professions:         "строитель, инженер, кризис-менеджер, спасатель, архитектор",
	},
	{
		Title:               "Звезда",
		SimpleName:          "Вдохновитель",
		Description:         "Вы — источник надежды и вдохновения. Предназначение — светить другим. Ваши мечты способны менять мир вокруг.",
		Health:              "Тело гаснет, когда гаснет вдохновение.",
		HealthZones:         "лимфатическая система, горло, суставы",
		HealthRootCause:     "блокировка вдохновения и отказ от мечты",
		Relationships:       "Вам нужен партнер, который верит в ваши мечты.",
		RelationshipStyle:   "дружба, вдохновение и общий полет",
		RelationshipNeeds:   "вера в мечты, восхищение, творческая свобода",
		DestructivePatterns: "идеализация партнера, отрыв от реальности",
		Finance:             "Деньги через творчество, искусство, вдохновляющую деятельность.",
		IncomeSources:       "искусство, медиа, личный бренд",
		Professions:         "художник, фотограф, блогер, дизайнер, модель",
	},
	{
		Title:               "Луна",
		SimpleName:          "Мистик",
		Description:         "Ваше предназначение — познать глубины подсознания и работать с интуицией. Вы чувствуете скрытое. Ваше воображение безгранично.",
		Health:              "Многое в теле идет от подсознания.",
		HealthZones:         "психосоматика, сон, лимфа и жидкости",
		HealthRootCause:     "страхи и подавленные эмоции",
		Relationships:       "Глубокие эмоциональные связи, возможны иллюзии.",
		RelationshipStyle:   "эмоциональная глубина и тайна",
		RelationshipNeeds:   "эмоциональная безопасность, принятие, нежность",
		DestructivePatterns: "иллюзии, подозрительность, ревность",
		Finance:             "Деньги через интуитивную деятельность, творчество, психологию.",
		IncomeSources:       "творчество, психология, интуитивные практики",
		Professions:         "психолог, режиссер, музыкант, парфюмер, таролог",
	},
	{
		Title:               "Солнце",
		SimpleName:          "Звезда компании",
		Description:         "Вы — источник света и радости. Предназначение — дарить тепло миру. Рядом с вами людям хорошо.",
		Health:              "Витальная энергия высокая, но может выгорать при чрезмерной отдаче.",
		HealthZones:         "сердце, глаза, выгорание",
		HealthRootCause:     "чрезмерная отдача и жизнь ради одобрения",
		Relationships:       "Открытые, радостные отношения, важна искренность.",
		RelationshipStyle:   "открытость, радость и щедрость",
		RelationshipNeeds:   "восхищение, признание, совместный праздник",
		DestructivePatterns: "тщеславие, эгоцентризм, игра на публику",
		Finance:             "Изобилие приходит естественно через самореализацию.",
		IncomeSources:       "публичность, работа с детьми, шоу",
		Professions:         "ведущий, артист, педагог, аниматор, PR-специалист",
	},
	{
		Title:               "Суд",
		SimpleName:          "Пробуждающий",
		Description:         "Ваша задача — пробуждать и трансформировать. Предназначение — возрождение. Вы соединяете поколения и прошлое с будущим.",
		Health:              "Кризисные состояния ведут к обновлению и исцелению.",
		HealthZones:         "слух, наследственные болезни, легкие",
		HealthRootCause:     "непроработанное прошлое и родовые обиды",
		Relationships:       "Кармические связи, важно проработать прошлое.",
		RelationshipStyle:   "семейность и кармическая глубина",
		RelationshipNeeds:   "прощение, семейные ценности, принятие прошлого",
		DestructivePatterns: "застревание в прошлом, повторение родовых сценариев",
		Finance:             "Деньги через работу с прошлым, исцеление, трансформацию.",
		IncomeSources:       "семейный бизнес, история, исцеление",
		Professions:         "генеалог, историк, семейный психолог, реставратор, врач",
	},
	{
		Title:               "Мир",
		SimpleName:          "Гражданин мира",
		Description:         "Вы пришли достичь целостности и гармонии. Предназначение — завершение циклов. Вам тесно в одной стране и одной роли.",
		Health:              "Гармоничное здоровье при проработанности всех аспектов.",
		HealthZones:         "общий тонус, иммунитет, суставы",
		HealthRootCause:     "незавершенные дела и узкие рамки",
		Relationships:       "Целостные, зрелые отношения.",
		RelationshipStyle:   "зрелость, открытость миру и партнерство",
		RelationshipNeeds:   "простор, путешествия, общий кругозор",
		DestructivePatterns: "бегство от обязательств, вечный поиск лучшего",
		Finance:             "Финансовое изобилие через целостность и завершение проектов.",
		IncomeSources:       "международные проекты, путешествия, завершение циклов",
		Professions:         "дипломат, переводчик, международный менеджер, гид, экспортер",
	},
	{
		Title:               "Шут",
		SimpleName:          "Свободная душа",
		Description:         "Ваше предназначение — начинать заново, быть свободным и спонтанным. Вы легко рискуете. Детская открытость помогает вам находить новое.",
		Health:              "Риски для тела растут при недостатке осознанности.",
		HealthZones:         "травмы, несчастные случаи, нервная система",
		HealthRootCause:     "безответственность и недостаток осознанности",
		Relationships:       "Свободные отношения, важна независимость.",
		RelationshipStyle:   "легкость, игра и спонтанность",
		RelationshipNeeds:   "свобода, юмор, приключения",
		DestructivePatterns: "инфантильность, бегство от ответственности",
		Finance:             "Деньги через риск, новые начинания, необычные проекты.",
		IncomeSources:       "стартапы, креатив, нестандартные проекты",
		Professions:         "стартапер, комик, путешественник, креативщик, фрилансер",
	},
}
