package utils

import (
	"sync"
	"testing"
)

func TestSnowflakeGeneratesUniqueIds(t *testing.T) {
	const perWorker = 200
	const workers = 8

	var mu sync.Mutex
	seen := make(map[int64]bool, perWorker*workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := GenerateID()
				mu.Lock()
				if seen[id] {
					mu.Unlock()
					t.Errorf("duplicate id %d", id)
					return
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}

func TestTransfer(t *testing.T) {
	if got := Transfer(int64(42)); got != 42 {
		t.Fatalf("int64: got %d", got)
	}
	// JWT claims decode json numbers as float64.
	if got := Transfer(float64(42)); got != 42 {
		t.Fatalf("float64: got %d", got)
	}
	if got := Transfer("42"); got != 42 {
		t.Fatalf("string: got %d", got)
	}
	if got := Transfer("nonsense"); got != -1 {
		t.Fatalf("bad string: got %d", got)
	}
	if got := Transfer(nil); got != -1 {
		t.Fatalf("nil: got %d", got)
	}
}

func TestCryptAndVerify(t *testing.T) {
	hashed, err := Crypt("secret-password")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if hashed == "secret-password" {
		t.Fatal("password stored in plain text")
	}
	if !VerifyPassword("secret-password", hashed) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong", hashed) {
		t.Fatal("wrong password accepted")
	}
}
