package service

import (
	"errors"
	"testing"
	"time"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/logger"

	"github.com/shopspring/decimal"
)

func TestStartMining(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	session, err := env.mining.Start(user.ID)
	if err != nil {
		t.Fatal(err)
	}

	if !session.Status.IsActive() {
		t.Fatalf("expected ACTIVE, got %s", session.Status.ToString())
	}
	if !session.MiningBalance.IsZero() {
		t.Fatalf("expected zero mining balance, got %s", session.MiningBalance)
	}
	if session.StartedAt == nil {
		t.Fatal("expected started_at to be set")
	}
	if session.StoppedAt != nil {
		t.Fatal("expected stopped_at to be nil")
	}
}

func TestStartMiningTwice(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	if _, err := env.mining.Start(user.ID); err != nil {
		t.Fatal(err)
	}

	_, err := env.mining.Start(user.ID)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestStartMiningUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.mining.Start(9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStopMining(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	if _, err := env.mining.Start(user.ID); err != nil {
		t.Fatal(err)
	}

	session, err := env.mining.Stop(user.ID)
	if err != nil {
		t.Fatal(err)
	}

	if session.Status.IsActive() {
		t.Fatal("expected STOPPED after stop")
	}
	if session.StoppedAt == nil {
		t.Fatal("expected stopped_at to be set")
	}

	_, err = env.mining.Stop(user.ID)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state on double stop, got %v", err)
	}
}

func TestStopMiningWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	_, err := env.mining.Stop(user.ID)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestStopMiningAccrues(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	mining := NewMiningService(env.db, env.repos, env.locker, dec("0.001"), logger.Logger{})

	startedAt := time.Now().Add(-10 * time.Second)
	session := &domain.MiningSessions{
		UserID:        user.ID,
		Status:        domain.MINING_ACTIVE,
		MiningBalance: decimal.Zero,
		StartedAt:     &startedAt,
	}
	if err := env.repos.MiningSessions.Create(env.db, session); err != nil {
		t.Fatal(err)
	}

	stopped, err := mining.Stop(user.ID)
	if err != nil {
		t.Fatal(err)
	}

	// at least 10 whole seconds elapsed at 0.001/s
	if stopped.MiningBalance.LessThan(dec("0.01")) {
		t.Fatalf("expected at least 0.01 accrued, got %s", stopped.MiningBalance)
	}
	if stopped.MiningBalance.GreaterThan(dec("0.02")) {
		t.Fatalf("accrued too much: %s", stopped.MiningBalance)
	}
}

func TestRestartKeepsMiningBalance(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	startedAt := time.Now().Add(-time.Minute)
	stoppedAt := time.Now()
	session := &domain.MiningSessions{
		UserID:        user.ID,
		Status:        domain.MINING_STOPPED,
		MiningBalance: dec("0.5"),
		StartedAt:     &startedAt,
		StoppedAt:     &stoppedAt,
	}
	if err := env.repos.MiningSessions.Create(env.db, session); err != nil {
		t.Fatal(err)
	}

	restarted, err := env.mining.Start(user.ID)
	if err != nil {
		t.Fatal(err)
	}

	if restarted.ID != session.ID {
		t.Fatalf("expected session %d reused, got %d", session.ID, restarted.ID)
	}
	if !restarted.MiningBalance.Equal(dec("0.5")) {
		t.Fatalf("expected mining balance kept at 0.5, got %s", restarted.MiningBalance)
	}
	if restarted.StoppedAt != nil {
		t.Fatal("expected stopped_at cleared on restart")
	}
}

func TestGetCurrentWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	session, err := env.mining.GetCurrent(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if session != nil {
		t.Fatalf("expected no session, got %+v", session)
	}
}

func TestGetCurrentDoesNotPersistAccrual(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	mining := NewMiningService(env.db, env.repos, env.locker, dec("0.001"), logger.Logger{})

	startedAt := time.Now().Add(-10 * time.Second)
	session := &domain.MiningSessions{
		UserID:        user.ID,
		Status:        domain.MINING_ACTIVE,
		MiningBalance: decimal.Zero,
		StartedAt:     &startedAt,
	}
	if err := env.repos.MiningSessions.Create(env.db, session); err != nil {
		t.Fatal(err)
	}

	current, err := mining.GetCurrent(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if current.MiningBalance.LessThan(dec("0.01")) {
		t.Fatalf("expected pending accrual in view, got %s", current.MiningBalance)
	}

	stored, err := env.repos.MiningSessions.FindLatest(env.db, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.MiningBalance.IsZero() {
		t.Fatalf("expected stored balance untouched, got %s", stored.MiningBalance)
	}
}

func TestWithdrawMining(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	startedAt := time.Now().Add(-time.Minute)
	stoppedAt := time.Now()
	session := &domain.MiningSessions{
		UserID:        user.ID,
		Status:        domain.MINING_STOPPED,
		MiningBalance: dec("0.25"),
		StartedAt:     &startedAt,
		StoppedAt:     &stoppedAt,
	}
	if err := env.repos.MiningSessions.Create(env.db, session); err != nil {
		t.Fatal(err)
	}

	withdrawal, err := env.mining.Withdraw(user.ID)
	if err != nil {
		t.Fatal(err)
	}

	if withdrawal.Type != domain.TX_MINING_WITHDRAWAL {
		t.Fatalf("expected MINING_WITHDRAWAL, got %s", withdrawal.Type.ToString())
	}
	if !withdrawal.Amount.Equal(dec("0.25")) {
		t.Fatalf("expected 0.25 withdrawn, got %s", withdrawal.Amount)
	}
	if withdrawal.FromCrypto != nil || withdrawal.ToCrypto != nil {
		t.Fatal("mining withdrawal must not carry a swap pair")
	}

	if got := getBalance(t, env, user.ID, domain.CRYPTO_BITCOIN); !got.Equal(dec("0.25")) {
		t.Fatalf("expected bitcoin balance 0.25, got %s", got)
	}

	after, err := env.repos.MiningSessions.FindLatest(env.db, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !after.MiningBalance.IsZero() {
		t.Fatalf("expected mining balance reset, got %s", after.MiningBalance)
	}
}

func TestWithdrawMiningWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	_, err := env.mining.Withdraw(user.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWithdrawZeroMiningBalance(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	if _, err := env.mining.Start(user.ID); err != nil {
		t.Fatal(err)
	}

	_, err := env.mining.Withdraw(user.ID)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}

	if got := getBalance(t, env, user.ID, domain.CRYPTO_BITCOIN); !got.IsZero() {
		t.Fatalf("expected bitcoin balance untouched, got %s", got)
	}
}

func TestWithdrawMiningCreatesMissingBalanceRow(t *testing.T) {
	env := newTestEnv(t)

	// user without seeded balances
	user := &domain.Users{}
	if err := env.repos.Users.Create(env.db, user); err != nil {
		t.Fatal(err)
	}

	startedAt := time.Now().Add(-time.Minute)
	stoppedAt := time.Now()
	session := &domain.MiningSessions{
		UserID:        user.ID,
		Status:        domain.MINING_STOPPED,
		MiningBalance: dec("0.1"),
		StartedAt:     &startedAt,
		StoppedAt:     &stoppedAt,
	}
	if err := env.repos.MiningSessions.Create(env.db, session); err != nil {
		t.Fatal(err)
	}

	if _, err := env.mining.Withdraw(user.ID); err != nil {
		t.Fatal(err)
	}

	if got := getBalance(t, env, user.ID, domain.CRYPTO_BITCOIN); !got.Equal(dec("0.1")) {
		t.Fatalf("expected bitcoin balance 0.1, got %s", got)
	}
}
