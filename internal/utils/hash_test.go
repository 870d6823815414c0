// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-lockr/models"
)

const testHashKey = "test-secret-key"

func TestHasher_MatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	want := hex.EncodeToString(mac.Sum(nil))

	if got := h.SumHex(data); got != want {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", want, got)
	}
	if got := HashString("test-data", testHashKey); got != want {
		t.Fatalf("HashString mismatch\nwant: %s\ngot:  %s", want, got)
	}
}

func TestHasher_EntryPayload(t *testing.T) {
	h := NewHasher(testHashKey)

	body, err := json.Marshal(models.Entry{ID: "e1", Title: "GitHub", Password: "c2FsdA=="})
	if err != nil {
		t.Fatalf("failed to marshal entry: %v", err)
	}

	sig := h.SumHex(body)
	if !h.Verify(body, sig) {
		t.Fatal("expected signature to verify")
	}

	body[len(body)-2] ^= 0x01
	if h.Verify(body, sig) {
		t.Fatal("tampered body must not verify")
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("same body")

	if NewHasher("key-one").SumHex(data) == NewHasher("key-two").SumHex(data) {
		t.Error("different keys must produce different hashes")
	}
}

func TestHasher_VerifyRejectsGarbage(t *testing.T) {
	h := NewHasher(testHashKey)

	for _, sig := range []string{"", "zz", "abcd"} {
		if h.Verify([]byte("x"), sig) {
			t.Errorf("signature %q must not verify", sig)
		}
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.SumHex([]byte("payload"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.SumHex([]byte("payload")); got != want {
				t.Errorf("concurrent hash mismatch: %s", got)
			}
		}()
	}
	wg.Wait()
}
