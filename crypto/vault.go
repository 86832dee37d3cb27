package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	ScryptN = 32768 // 2^15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256 key length

	saltLen  = 32
	nonceLen = 12

	vaultVersion = 1
)

// ErrWrongPassphrase is returned when a vault cannot be opened
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted vault")

// Vault is a passphrase-sealed secret, safe to store on disk as JSON
type Vault struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

type vaultData struct {
	Secret  string `json:"secret"`
	Version int    `json:"version"`
}

// Seal encrypts secret with a key derived from passphrase
func Seal(secret, passphrase string) (*Vault, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	data, err := json.Marshal(vaultData{Secret: secret, Version: vaultVersion})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}
	defer clearBytes(data)

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return &Vault{
		Salt:  salt,
		Nonce: nonce,
		Data:  aesGCM.Seal(nil, nonce, data, nil),
	}, nil
}

// Open decrypts the vault and returns the sealed secret
func (v *Vault) Open(passphrase string) (string, error) {
	key, err := deriveKey(passphrase, v.Salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(v.Nonce) != aesGCM.NonceSize() {
		return "", ErrWrongPassphrase
	}

	plaintext, err := aesGCM.Open(nil, v.Nonce, v.Data, nil)
	if err != nil {
		return "", ErrWrongPassphrase
	}
	defer clearBytes(plaintext)

	var data vaultData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return "", fmt.Errorf("failed to deserialize vault data: %w", err)
	}

	return data.Secret, nil
}

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
