package cache

import (
	"testing"
	"time"
)

func TestDiskRoundTrip(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Hour)

	if _, found := c.Get("missing"); found {
		t.Error("Get on empty cache reported a hit")
	}

	if err := c.Set(Key("https://example.com"), []byte("body"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, found := c.Get(Key("https://example.com"))
	if !found {
		t.Fatal("Get missed after Set")
	}
	if string(val) != "body" {
		t.Errorf("Get = %q", val)
	}
}

func TestDiskExpiry(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Hour)

	if err := c.Set("stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("stale"); found {
		t.Error("Get returned an expired entry")
	}
}

func TestDiskDeleteAndClear(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Hour)

	_ = c.Set("a", []byte("1"), 0)
	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Get hit after Delete")
	}

	_ = c.Set("b", []byte("2"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("Get hit after Clear")
	}
}
