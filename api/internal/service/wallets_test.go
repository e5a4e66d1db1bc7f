package service

import (
	"errors"
	"testing"

	"cryptomine/api/internal/domain"

	"github.com/brianvoe/gofakeit/v7"
)

func TestSaveWalletUpsert(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	first, err := env.wallets.Save(user.ID, domain.CRYPTO_BITCOIN, gofakeit.BitcoinAddress())
	if err != nil {
		t.Fatal(err)
	}

	second, err := env.wallets.Save(user.ID, domain.CRYPTO_BITCOIN, gofakeit.BitcoinAddress())
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected row %d reused, got %d", first.ID, second.ID)
	}
	if second.Address == first.Address {
		t.Fatal("expected address overwritten")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected created_at unchanged, got %s then %s", first.CreatedAt, second.CreatedAt)
	}

	wallets, err := env.wallets.ListByUser(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(wallets) != 1 {
		t.Fatalf("expected a single row per currency, got %d", len(wallets))
	}
}

func TestSaveWalletPerCurrency(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	if _, err := env.wallets.Save(user.ID, domain.CRYPTO_BITCOIN, gofakeit.BitcoinAddress()); err != nil {
		t.Fatal(err)
	}
	if _, err := env.wallets.Save(user.ID, domain.CRYPTO_DOGECOIN, gofakeit.BitcoinAddress()); err != nil {
		t.Fatal(err)
	}

	wallets, err := env.wallets.ListByUser(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(wallets) != 2 {
		t.Fatalf("expected one row per currency, got %d", len(wallets))
	}
}

func TestSaveWalletValidation(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)

	if _, err := env.wallets.Save(user.ID, domain.CRYPTO_BITCOIN, ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty address, got %v", err)
	}
	if _, err := env.wallets.Save(user.ID, domain.CRYPTO_NONE, gofakeit.BitcoinAddress()); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown currency, got %v", err)
	}
	if _, err := env.wallets.Save(9999, domain.CRYPTO_BITCOIN, gofakeit.BitcoinAddress()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for unknown user, got %v", err)
	}
}

func TestWithdrawToWallet(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)
	setBalance(t, env, user.ID, domain.CRYPTO_BITCOIN, "1.0")

	address := gofakeit.BitcoinAddress()
	if _, err := env.wallets.Save(user.ID, domain.CRYPTO_BITCOIN, address); err != nil {
		t.Fatal(err)
	}

	withdrawal, err := env.wallets.Withdraw(user.ID, domain.CRYPTO_BITCOIN, dec("0.3"), address)
	if err != nil {
		t.Fatal(err)
	}

	if withdrawal.Type != domain.TX_WITHDRAWAL_TO_WALLET {
		t.Fatalf("expected WITHDRAWAL_TO_WALLET, got %s", withdrawal.Type.ToString())
	}
	if withdrawal.FromCrypto == nil || *withdrawal.FromCrypto != domain.CRYPTO_BITCOIN.ToString() {
		t.Fatal("expected from_crypto BITCOIN")
	}
	if withdrawal.ToCrypto != nil {
		t.Fatal("external withdrawal has no credited currency")
	}

	if got := getBalance(t, env, user.ID, domain.CRYPTO_BITCOIN); !got.Equal(dec("0.7")) {
		t.Fatalf("expected bitcoin 0.7, got %s", got)
	}
}

func TestWithdrawToUnsavedAddress(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)
	setBalance(t, env, user.ID, domain.CRYPTO_BITCOIN, "1.0")

	_, err := env.wallets.Withdraw(user.ID, domain.CRYPTO_BITCOIN, dec("0.3"), gofakeit.BitcoinAddress())
	if !errors.Is(err, domain.ErrAddressMismatch) {
		t.Fatalf("expected address mismatch, got %v", err)
	}

	if got := getBalance(t, env, user.ID, domain.CRYPTO_BITCOIN); !got.Equal(dec("1.0")) {
		t.Fatalf("expected bitcoin unchanged at 1.0, got %s", got)
	}
}

func TestWithdrawAddressSavedForOtherCurrency(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)
	setBalance(t, env, user.ID, domain.CRYPTO_BITCOIN, "1.0")

	address := gofakeit.BitcoinAddress()
	if _, err := env.wallets.Save(user.ID, domain.CRYPTO_DOGECOIN, address); err != nil {
		t.Fatal(err)
	}

	_, err := env.wallets.Withdraw(user.ID, domain.CRYPTO_BITCOIN, dec("0.3"), address)
	if !errors.Is(err, domain.ErrAddressMismatch) {
		t.Fatalf("expected address mismatch, got %v", err)
	}
}

func TestWithdrawAddressSavedByOtherUser(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)
	other := mustUser(t, env)
	setBalance(t, env, user.ID, domain.CRYPTO_BITCOIN, "1.0")

	address := gofakeit.BitcoinAddress()
	if _, err := env.wallets.Save(other.ID, domain.CRYPTO_BITCOIN, address); err != nil {
		t.Fatal(err)
	}

	_, err := env.wallets.Withdraw(user.ID, domain.CRYPTO_BITCOIN, dec("0.3"), address)
	if !errors.Is(err, domain.ErrAddressMismatch) {
		t.Fatalf("expected address mismatch, got %v", err)
	}
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)
	setBalance(t, env, user.ID, domain.CRYPTO_BITCOIN, "0.1")

	address := gofakeit.BitcoinAddress()
	if _, err := env.wallets.Save(user.ID, domain.CRYPTO_BITCOIN, address); err != nil {
		t.Fatal(err)
	}

	_, err := env.wallets.Withdraw(user.ID, domain.CRYPTO_BITCOIN, dec("0.3"), address)
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
}

func TestWithdrawWithoutBalanceRow(t *testing.T) {
	env := newTestEnv(t)

	user := &domain.Users{}
	if err := env.repos.Users.Create(env.db, user); err != nil {
		t.Fatal(err)
	}

	// no stored row reads as zero funds, not as a missing resource
	_, err := env.wallets.Withdraw(user.ID, domain.CRYPTO_BITCOIN, dec("0.3"), gofakeit.BitcoinAddress())
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
}

func TestSwapThenFailedWithdrawalKeepsBalance(t *testing.T) {
	env := newTestEnv(t)
	user := mustUser(t, env)
	setBalance(t, env, user.ID, domain.CRYPTO_BITCOIN, "1.0")

	if _, err := env.exchange.Swap(user.ID, domain.CRYPTO_BITCOIN, domain.CRYPTO_ETHEREUM_CLASSIC, dec("0.5")); err != nil {
		t.Fatal(err)
	}

	_, err := env.wallets.Withdraw(user.ID, domain.CRYPTO_BITCOIN, dec("0.3"), gofakeit.BitcoinAddress())
	if !errors.Is(err, domain.ErrAddressMismatch) {
		t.Fatalf("expected address mismatch, got %v", err)
	}

	if got := getBalance(t, env, user.ID, domain.CRYPTO_BITCOIN); !got.Equal(dec("0.5")) {
		t.Fatalf("expected bitcoin 0.5 after swap and failed withdrawal, got %s", got)
	}

	entries, err := env.ledger.Transactions(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected only the swap pair in the ledger, got %d entries", len(entries))
	}
}
