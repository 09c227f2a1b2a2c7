package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := OpenRedis(mr.Addr(), 3)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if got := client.Options().DB; got != 3 {
		t.Fatalf("client DB = %d, want 3", got)
	}

	// round-trip a session-shaped key to prove the connection is usable
	ctx := context.Background()
	if err := client.Set(ctx, "session:abc", "1", time.Minute).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}
	got, err := client.Get(ctx, "session:abc").Result()
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if got != "1" {
		t.Fatalf("GET = %q, want %q", got, "1")
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	// port 1 refuses immediately, so the ping fails well inside its timeout
	if _, err := OpenRedis("127.0.0.1:1", 0); err == nil {
		t.Fatal("expected connection error")
	}
}
