package config_test

import (
	"os"
	"testing"

	"github.com/tunequiz/tunequiz/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "short_key")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto should have panicked with a short key, but it did not.")
		}
	}()

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)

		config.InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "spotify-access-token-to-protect"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed with error: %v", err)
		}

		decryptedtext, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed with error: %v", err)
		}

		if decryptedtext != plaintext {
			t.Errorf("Decrypted text ('%s') does not match the original ('%s')",
				decryptedtext, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("Encryption is not randomized (nonce/IV). Ciphertexts should differ.")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		plaintext := ""
		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed with error: %v", err)
		}
		decryptedtext, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed with error: %v", err)
		}
		if decryptedtext != plaintext {
			t.Errorf("Decrypted empty text is incorrect: '%s'", decryptedtext)
		}
	})

	t.Run("TruncatedCiphertext", func(t *testing.T) {
		if _, err := config.Decrypt("YWJj"); err == nil {
			t.Error("Decrypt should fail on ciphertext shorter than the nonce")
		}
	})
}
