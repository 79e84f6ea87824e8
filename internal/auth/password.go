package auth

import (
	"strings"

	"go-gin-seat-booking/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher 密碼雜湊與驗證
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash 空密碼回傳無法登入的標記
func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return UnusablePassword(), nil
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(hash, plain string) bool {
	if hash == "" || strings.HasPrefix(hash, model.UnusablePasswordPrefix) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// UnusablePassword 產生一個永遠無法驗證通過的密碼欄位值
func UnusablePassword() string {
	return model.UnusablePasswordPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
