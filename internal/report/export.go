package report

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/synthesis"
)

// Style names how a block is rendered by the document renderer.
type Style string

const (
	StyleTitle      Style = "title"
	StyleSubtitle   Style = "subtitle"
	StyleCaption    Style = "caption"
	StyleHeading1   Style = "heading1"
	StyleHeading2   Style = "heading2"
	StyleHeading3   Style = "heading3"
	StyleBanner     Style = "banner"
	StyleParagraph  Style = "paragraph"
	StyleBullet     Style = "bullet"
	StyleConclusion Style = "conclusion"
	StylePageBreak  Style = "page_break"
)

// Margin is vertical spacing around a block, in millimetres.
type Margin struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

type Block struct {
	Text     string `json:"text,omitempty"`
	Style    Style  `json:"style"`
	FontSize int    `json:"font_size,omitempty"`
	Margin   Margin `json:"margin"`
}

// Document is the logical content of the exported report. Blocks with
// StylePageBreak separate pages.
type Document struct {
	Title      string  `json:"title"`
	PageMargin float64 `json:"page_margin"`
	Watermark  string  `json:"watermark"`
	Blocks     []Block `json:"blocks"`
}

const (
	Watermark  = "о-тебе.рф"
	pageMargin = 20
)

var exportEnergies = [4]struct {
	name, caption string
}{
	{"Личная энергия (Я)", "Ваша суть, таланты, предназначение"},
	{"Энергия судьбы (Путь)", "Ваш жизненный путь и миссия"},
	{"Социальная энергия (Люди)", "Как вы взаимодействуете с миром"},
	{"Духовная энергия (Дух)", "Ваш внутренний мир и духовность"},
}

type docBuilder struct {
	blocks []Block
}

func (d *docBuilder) add(b Block) {
	d.blocks = append(d.blocks, b)
}

func (d *docBuilder) pageBreak() {
	d.add(Block{Style: StylePageBreak})
}

func (d *docBuilder) heading(text string, level int) {
	sizes := map[int]int{1: 18, 2: 14, 3: 12}
	spacing := map[int]float64{1: 10, 2: 7, 3: 5}
	styles := map[int]Style{1: StyleHeading1, 2: StyleHeading2, 3: StyleHeading3}
	d.add(Block{Text: text, Style: styles[level], FontSize: sizes[level], Margin: Margin{Top: spacing[level], Bottom: 3}})
}

func (d *docBuilder) paragraph(text string) {
	d.add(Block{Text: text, Style: StyleParagraph, FontSize: 10, Margin: Margin{Bottom: 3}})
}

// section splits a long-form text into lines: emoji-led lines become
// headings, bullet lines stay bullets and the rest are paragraphs.
func (d *docBuilder) section(text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch classify(line) {
		case StyleHeading2:
			d.heading(line, 2)
		case StyleBullet:
			d.add(Block{Text: line, Style: StyleBullet, FontSize: 10, Margin: Margin{Bottom: 1}})
		default:
			d.paragraph(line)
		}
	}
}

func classify(line string) Style {
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
		return StyleBullet
	}
	r, _ := utf8.DecodeRuneInString(line)
	if unicode.Is(unicode.So, r) {
		return StyleHeading2
	}
	return StyleParagraph
}

// FormatExportDocument lays out the paginated report for r.
func FormatExportDocument(r matrix.Result, set synthesis.Set) Document {
	var d docBuilder
	upper := cases.Upper(language.Russian)

	d.add(Block{Text: "МАТРИЦА СУДЬБЫ", Style: StyleTitle, FontSize: 24})
	d.add(Block{Text: "Персональный отчет для " + r.Name, Style: StyleSubtitle, FontSize: 14})
	d.add(Block{Text: "Дата рождения: " + r.FormatBirthDate(), Style: StyleCaption, FontSize: 10, Margin: Margin{Bottom: 10}})

	energies := set.Energies()

	d.heading("ВАШИ КЛЮЧЕВЫЕ ЭНЕРГИИ", 1)
	for i, e := range energies {
		d.heading(fmt.Sprintf("%s: %s", exportEnergies[i].name, e.Description.Title), 2)
		d.add(Block{Text: exportEnergies[i].caption, Style: StyleParagraph, FontSize: 10, Margin: Margin{Bottom: 6}})
	}

	d.pageBreak()
	d.heading("ДЕТАЛЬНАЯ РАСШИФРОВКА", 1)
	d.add(Block{
		Text:     "Ниже представлен глубокий анализ каждой из ваших энергий с рекомендациями по всем сферам жизни.",
		Style:    StyleParagraph,
		FontSize: 10,
		Margin:   Margin{Bottom: 8},
	})

	for i, e := range energies {
		desc := e.Description

		d.pageBreak()
		d.add(Block{
			Text:     upper.String(exportEnergies[i].name + ": " + desc.Title),
			Style:    StyleBanner,
			FontSize: 16,
			Margin:   Margin{Bottom: 15},
		})

		d.heading("ПРЕДНАЗНАЧЕНИЕ И ТАЛАНТЫ", 2)
		d.section(desc.Description)
		d.heading("ЗДОРОВЬЕ", 2)
		d.section(desc.Health)

		d.pageBreak()
		d.heading("ОТНОШЕНИЯ", 2)
		d.section(desc.Relationships)
		d.heading("ФИНАНСЫ И КАРЬЕРА", 2)
		d.section(desc.Finance)
	}

	d.pageBreak()
	d.add(Block{Text: "ВАША МАТРИЦА — ЭТО КАРТА ВОЗМОЖНОСТЕЙ", Style: StyleConclusion, FontSize: 16, Margin: Margin{Bottom: 5}})
	d.add(Block{Text: "Используйте эти знания для осознанной жизни и реализации своего потенциала", Style: StyleCaption, FontSize: 10})
	d.add(Block{Text: "Сайт: " + Watermark, Style: StyleCaption, FontSize: 10})

	return Document{
		Title:      "МАТРИЦА СУДЬБЫ - " + r.Name,
		PageMargin: pageMargin,
		Watermark:  Watermark,
		Blocks:     d.blocks,
	}
}

// Pages splits the document blocks on page breaks.
func (doc Document) Pages() [][]Block {
	pages := [][]Block{{}}
	for _, b := range doc.Blocks {
		if b.Style == StylePageBreak {
			pages = append(pages, []Block{})
			continue
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], b)
	}
	return pages
}
