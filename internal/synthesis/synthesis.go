package synthesis

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
)

// Set is the four descriptions resolved for one matrix.
type Set struct {
	Personal  arcana.Description
	Destiny   arcana.Description
	Social    arcana.Description
	Spiritual arcana.Description
}

// Resolve looks up the four arcana of r in base.
func Resolve(base *arcana.Base, r matrix.Result) Set {
	return Set{
		Personal:  base.Lookup(r.Personal),
		Destiny:   base.Lookup(r.Destiny),
		Social:    base.Lookup(r.Social),
		Spiritual: base.Lookup(r.Spiritual),
	}
}

// Role names one of the four positions of the matrix.
type Role string

const (
	RolePersonal  Role = "Личная энергия"
	RoleDestiny   Role = "Предназначение"
	RoleSocial    Role = "Социальная энергия"
	RoleSpiritual Role = "Духовная энергия"
)

// Energy is one position of the matrix with its description.
type Energy struct {
	Role        Role
	Description arcana.Description
}

// Energies returns the four positions in display order.
func (s Set) Energies() [4]Energy {
	return [4]Energy{
		{RolePersonal, s.Personal},
		{RoleDestiny, s.Destiny},
		{RoleSocial, s.Social},
		{RoleSpiritual, s.Spiritual},
	}
}

type Health struct {
	Conflict     string   `json:"conflict"`
	MainRiskText string   `json:"main_risk_text"`
	Zones        []string `json:"zones"`
	RootCause    string   `json:"root_cause"`
	ActionPlan   []string `json:"action_plan"`
}

type Finance struct {
	Blocks     string   `json:"blocks"`
	Strategy   string   `json:"strategy"`
	Sources    []string `json:"sources"`
	Growth     string   `json:"growth"`
	ActionPlan []string `json:"action_plan"`
}

type Relationships struct {
	Dynamic    string   `json:"dynamic"`
	Needs      []string `json:"needs"`
	Risks      []string `json:"risks"`
	Harmony    string   `json:"harmony"`
	ActionPlan []string `json:"action_plan"`
}

type Career struct {
	Calling     string   `json:"calling"`
	Professions []string `json:"professions"`
	Environment string   `json:"environment"`
	Growth      string   `json:"growth"`
	ActionPlan  []string `json:"action_plan"`
}

// All bundles every synthesized artifact of one set.
type All struct {
	Health        Health        `json:"health"`
	Finance       Finance       `json:"finance"`
	Relationships Relationships `json:"relationships"`
	Career        Career        `json:"career"`
	Portrait      Portrait      `json:"portrait"`
	Professional  []Section     `json:"professional"`
}

// Synthesize runs every synthesis over s.
func Synthesize(s Set) All {
	return All{
		Health:        SynthesizeHealth(s),
		Finance:       SynthesizeFinance(s),
		Relationships: SynthesizeRelationships(s),
		Career:        SynthesizeCareer(s),
		Portrait:      BuildPortrait(s),
		Professional:  Professional(s),
	}
}

func SynthesizeHealth(s Set) Health {
	p, d, sp := s.Personal, s.Destiny, s.Spiritual

	h := Health{
		Conflict: fmt.Sprintf(
			"Внутри вас спорят «%s» и «%s»: характер тянет в одну сторону, судьба в другую. Тело первым реагирует на этот разлад.",
			p.SimpleName, d.SimpleName),
		Zones: perEnergy(s, HealthZones),
	}

	if zones := HealthZones(p); zones != "" {
		h.MainRiskText = fmt.Sprintf("Главная зона риска связана с энергией «%s» (%s): %s.", p.SimpleName, p.Title, zones)
	} else {
		h.MainRiskText = fmt.Sprintf("Главная зона риска связана с энергией «%s» (%s).", p.SimpleName, p.Title)
	}

	causes := nonEmpty(HealthRootCause(p), HealthRootCause(d), HealthRootCause(sp))
	if len(causes) > 0 {
		h.RootCause = "Корень проблем: " + strings.Join(causes, "; ") + "."
	}

	h.ActionPlan = []string{
		fmt.Sprintf("Пройти обследование зон энергии «%s» в первую очередь.", p.SimpleName),
		fmt.Sprintf("Снизить напряжение между «%s» и «%s»: делать шаги к предназначению каждый день.", p.SimpleName, d.SimpleName),
		fmt.Sprintf("Перестать жить только образом «%s», который ждут окружающие.", s.Social.SimpleName),
		fmt.Sprintf("Восстанавливаться через практики энергии «%s».", sp.SimpleName),
	}
	return h
}

func SynthesizeFinance(s Set) Finance {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual

	f := Finance{
		Blocks: fmt.Sprintf(
			"Вы зарабатываете как «%s», а деньги ждут вас на пути «%s». Пока эти энергии не договорятся, доход будет упираться в потолок.",
			p.SimpleName, d.SimpleName),
		Strategy: fmt.Sprintf(
			"Стройте доход через %s, продавайте через образ «%s».",
			strings.ToLower(d.Title), so.SimpleName),
		Sources: perEnergy(s, IncomeSources),
		Growth: fmt.Sprintf(
			"Рост начинается, когда энергия «%s» перестает считать деньги чем-то стыдным.",
			sp.SimpleName),
	}

	f.ActionPlan = []string{
		fmt.Sprintf("Выписать все текущие источники дохода и отметить, какие из них про «%s».", d.SimpleName),
		"Убрать одно занятие, которое приносит деньги, но забирает силы.",
		fmt.Sprintf("Запустить небольшой проект в сфере: %s.", fallback(IncomeSources(d), strings.ToLower(d.Title))),
		fmt.Sprintf("Проработать денежные установки через энергию «%s».", sp.SimpleName),
	}
	return f
}

func SynthesizeRelationships(s Set) Relationships {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual

	r := Relationships{
		Needs: perEnergy(s, RelationshipNeeds),
		Risks: perEnergy(s, DestructivePatterns),
		Harmony: fmt.Sprintf(
			"Гармония приходит, когда партнер видит в вас не только «%s», но и «%s».",
			so.SimpleName, sp.SimpleName),
	}

	if style := RelationshipStyle(p); style != "" {
		r.Dynamic = fmt.Sprintf("В отношениях вы проявляетесь как «%s»: %s. Судьба учит вас энергии «%s».", p.SimpleName, style, d.SimpleName)
	} else {
		r.Dynamic = fmt.Sprintf("В отношениях вы проявляетесь как «%s». Судьба учит вас энергии «%s».", p.SimpleName, d.SimpleName)
	}

	r.ActionPlan = []string{
		fmt.Sprintf("Назвать партнеру свои потребности энергии «%s» прямо.", p.SimpleName),
		fmt.Sprintf("Заметить, где маска «%s» мешает близости.", so.SimpleName),
		"Договориться о правилах, которые соблюдают оба.",
		fmt.Sprintf("Искать общий смысл через энергию «%s».", sp.SimpleName),
	}
	return r
}

func SynthesizeCareer(s Set) Career {
	p, d, so, sp := s.Personal, s.Destiny, s.Social, s.Spiritual

	c := Career{
		Calling: fmt.Sprintf(
			"Ваше призвание — путь «%s» (%s). Сильные стороны дает «%s».",
			d.SimpleName, d.Title, p.SimpleName),
		Professions: splitList(Professions(d)),
		Environment: fmt.Sprintf(
			"Лучше всего вы работаете там, где ценят образ «%s» и оставляют место для «%s».",
			so.SimpleName, sp.SimpleName),
		Growth: fmt.Sprintf(
			"Рост ускоряется, когда задачи совпадают с энергией «%s» хотя бы на 70%%.",
			d.SimpleName),
	}

	c.ActionPlan = []string{
		"Сравнить текущую работу со списком подходящих профессий.",
		fmt.Sprintf("Взять одну задачу в сфере «%s» в ближайший месяц.", d.SimpleName),
		fmt.Sprintf("Использовать качества «%s» как конкурентное преимущество.", p.SimpleName),
		fmt.Sprintf("Проверять решения на соответствие ценностям «%s».", sp.SimpleName),
	}
	return c
}

func perEnergy(s Set, extract func(arcana.Description) string) []string {
	var out []string
	for _, e := range s.Energies() {
		if v := extract(e.Description); v != "" {
			out = append(out, fmt.Sprintf("%s (%s): %s", e.Role, e.Description.Title, v))
		}
	}
	return out
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
