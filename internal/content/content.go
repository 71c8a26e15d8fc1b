// Package content holds the static blog articles.
package content

type Category string

const (
	CategoryPsychology Category = "psychology"
	CategoryCoaching   Category = "coaching"
	CategoryPractice   Category = "practice"
)

type Post struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
	ReadTime int      `json:"read_time"`
	Image    string   `json:"image"`
}

var articles = []Post{
	{
		ID:       "matrix-for-psychologists",
		Title:    "Матрица судьбы для психологов",
		Subtitle: "Как ускорить диагностику клиента в 3 раза",
		Category: CategoryPsychology,
		ReadTime: 5,
		Image:    "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?w=800",
		Content:  "Матрица судьбы помогает психологам быстрее понимать клиента.",
	},
	{
		ID:       "coaching-sessions-optimization",
		Title:    "Оптимизация коуч-сессий",
		Subtitle: "Сокращаем путь к результату",
		Category: CategoryCoaching,
		ReadTime: 5,
		Image:    "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800",
		Content:  "Матрица судьбы показывает истинные блоки клиента.",
	},
	{
		ID:       "first-session-preparation",
		Title:    "Подготовка к первой сессии",
		Subtitle: "Узнайте клиента до встречи",
		Category: CategoryPractice,
		ReadTime: 5,
		Image:    "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?w=800",
		Content:  "Используйте матрицу для подготовки к встрече с клиентом.",
	},
}

// Articles returns a copy of all articles in publication order.
func Articles() []Post {
	out := make([]Post, len(articles))
	copy(out, articles)
	return out
}

func Article(id string) (Post, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return Post{}, false
}
