package main

import (
	"context"
	"testing"
)

func TestRunDryRun(t *testing.T) {
	t.Setenv("STORE_DRIVER", "bogus")
	if code := run(context.Background(), true); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
}

func TestRunMemoryDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ADMIN_AUTH", "false")
	if code := run(context.Background(), false); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	t.Setenv("STORE_DRIVER", "bogus")
	if code := run(context.Background(), false); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}
