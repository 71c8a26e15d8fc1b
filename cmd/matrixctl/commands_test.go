package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access/mocks"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/history"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/storage"
)

type CLISuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	checker *mocks.MockChecker
	store   *history.Store
	session *history.Session
	out     *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.checker = mocks.NewMockChecker(s.ctrl)
	kv := storage.NewMemory()
	s.store = history.NewStore(kv, 0)
	s.session = history.NewSession(kv, s.store)
	s.out = &bytes.Buffer{}
}

func (s *CLISuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CLISuite) execute(args ...string) error {
	open := func(_ context.Context, _ cliConfig, out io.Writer) (*app, error) {
		return &app{
			out:     out,
			base:    arcana.Default(),
			gate:    access.NewGate(s.checker, nil),
			history: s.store,
			session: s.session,
			now:     func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
		}, nil
	}
	s.out.Reset()
	root := newRootCmd(open)
	root.SetOut(s.out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func (s *CLISuite) grant(email string) {
	s.checker.EXPECT().Check(gomock.Any(), email).
		Return(access.Entitlement{HasAccess: true, PlanType: "month"}, nil).AnyTimes()
}

func (s *CLISuite) TestCalcAnonymousShowsPaywall() {
	s.Require().NoError(s.execute("calc", "--date", "1990-05-15", "--name", "Анна"))

	out := s.out.String()
	s.Contains(out, "Анна, 15.05.1990")
	s.Contains(out, "Императрица")
	s.Contains(out, "Колесница")
	s.Contains(out, paywallLine)
	s.NotContains(out, "🔮 МАТРИЦА СУДЬБЫ")
}

func (s *CLISuite) TestCalcEntitledPrintsInterpretationAndSavesHistory() {
	s.grant("anna@example.com")

	s.Require().NoError(s.execute("calc", "--date", "15.05.1990", "--name", "Анна", "--email", "Anna@Example.com"))
	s.Contains(s.out.String(), "🔮 МАТРИЦА СУДЬБЫ - Анна")
	s.NotContains(s.out.String(), paywallLine)

	records, err := s.store.Load(context.Background(), "anna@example.com")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("15.05.1990", records[0].BirthDate)
	s.Equal("anna@example.com", records[0].Result.Email)
}

func (s *CLISuite) TestCalcJSON() {
	s.checker.EXPECT().Check(gomock.Any(), "anna@example.com").
		Return(access.Entitlement{}, errors.New("connection refused"))

	s.Require().NoError(s.execute("calc", "--date", "1990-05-15", "--name", "Анна", "--email", "anna@example.com", "--json"))

	var rendered struct {
		Access  string `json:"access"`
		Notice  string `json:"notice"`
		Paywall bool   `json:"paywall"`
		Numbers []struct {
			Number int `json:"number"`
		} `json:"numbers"`
	}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &rendered))
	s.Equal("denied", rendered.Access)
	s.Equal(access.NoticeCheckFailed, rendered.Notice)
	s.True(rendered.Paywall)
	s.Require().Len(rendered.Numbers, 4)
	s.Equal(3, rendered.Numbers[0].Number)
	s.Equal(20, rendered.Numbers[1].Number)
}

func (s *CLISuite) TestCalcValidation() {
	err := s.execute("calc", "--date", "15/05/1990", "--name", "Анна")
	s.Require().Error(err)
	s.True(matrix.IsValidation(err))

	s.Error(s.execute("calc", "--date", "1990-05-15", "--name", "  "))
	s.Error(s.execute("calc", "--date", "1990-05-15", "--name", "Анна", "--expand", "horoscope"))
}

func (s *CLISuite) TestShareRequiresAccess() {
	s.ErrorIs(s.execute("share", "--date", "1990-05-15", "--name", "Анна"), errNotLoggedIn)

	s.checker.EXPECT().Check(gomock.Any(), "bob@example.com").
		Return(access.Entitlement{HasAccess: false, Message: "Доступ не найден"}, nil)
	s.ErrorIs(s.execute("share", "--date", "1990-05-15", "--name", "Анна", "--email", "bob@example.com"), errAccessRequired)
}

func (s *CLISuite) TestShareOmitProfessional() {
	s.grant("anna@example.com")

	s.Require().NoError(s.execute("share", "--date", "1990-05-15", "--name", "Анна", "--email", "anna@example.com", "--origin", "https://example.org"))
	s.Contains(s.out.String(), "🧠 Для психологов и коучей")
	s.Contains(s.out.String(), "🌐 Рассчитай свою матрицу: https://example.org")

	s.Require().NoError(s.execute("share", "--date", "1990-05-15", "--name", "Анна", "--email", "anna@example.com", "--omit-professional"))
	s.NotContains(s.out.String(), "🧠 Для психологов и коучей")
}

func (s *CLISuite) TestExportToFile() {
	s.grant("anna@example.com")
	path := filepath.Join(s.T().TempDir(), "report.json")

	s.Require().NoError(s.execute("export", "--date", "1990-05-15", "--name", "Анна", "--email", "anna@example.com", "--out", path))
	s.Contains(s.out.String(), path)

	raw, err := os.ReadFile(path)
	s.Require().NoError(err)
	var doc struct {
		Title  string `json:"title"`
		Blocks []struct {
			Text string `json:"text"`
		} `json:"blocks"`
	}
	s.Require().NoError(json.Unmarshal(raw, &doc))
	s.NotEmpty(doc.Blocks)
	s.Equal("МАТРИЦА СУДЬБЫ", doc.Blocks[0].Text)
}

func (s *CLISuite) TestLoginHistoryLogout() {
	ctx := context.Background()
	s.grant("anna@example.com")

	s.Require().NoError(s.execute("login", "Anna@Example.com"))
	s.Contains(s.out.String(), "Вход выполнен: anna@example.com")
	s.Contains(s.out.String(), "Доступ: активен (month)")

	email, err := s.session.UserEmail(ctx)
	s.Require().NoError(err)
	s.Equal("anna@example.com", email)
	auth, err := s.session.SubscriberAuth(ctx)
	s.Require().NoError(err)
	s.True(auth)

	s.Require().NoError(s.execute("history"))
	s.Contains(s.out.String(), "История пуста")

	s.Require().NoError(s.execute("calc", "--date", "1990-05-15", "--name", "Анна"))
	s.Require().NoError(s.execute("calc", "--date", "1985-01-01", "--name", "Иван"))

	s.Require().NoError(s.execute("history", "--limit", "1"))
	s.Contains(s.out.String(), "Иван")
	s.NotContains(s.out.String(), "Анна")

	s.Require().NoError(s.execute("logout"))
	s.Contains(s.out.String(), "Сессия завершена")

	records, err := s.store.Load(ctx, "anna@example.com")
	s.Require().NoError(err)
	s.Empty(records)
	s.ErrorIs(s.execute("history"), errNotLoggedIn)
}

func (s *CLISuite) TestLoginWithoutAccess() {
	s.checker.EXPECT().Check(gomock.Any(), "bob@example.com").
		Return(access.Entitlement{HasAccess: false, Message: "Доступ не найден"}, nil)

	s.Require().NoError(s.execute("login", "bob@example.com"))
	s.Contains(s.out.String(), "Доступ: нет")
	s.Contains(s.out.String(), "Доступ не найден")
}

func (s *CLISuite) TestInvalidEnvironmentFailsFast() {
	s.T().Setenv("MATRIXCTL_TIMEOUT", "abc")

	err := s.execute("calc", "--date", "1990-05-15", "--name", "Анна")
	s.Require().Error(err)
	s.Contains(err.Error(), "parse environment")
	s.Empty(s.out.String())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MATRIXCTL_STATE", "")
	t.Setenv("MATRIXCTL_SERVER", "http://localhost:8080")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Server != "http://localhost:8080" || cfg.Timeout != 10*time.Second || cfg.HistoryMax != 200 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if filepath.Base(cfg.StatePath) != "state.db" {
		t.Fatalf("state path = %q", cfg.StatePath)
	}
}
