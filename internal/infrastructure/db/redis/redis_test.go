package redis

import (
	"testing"
	"time"
)

func TestKeys(t *testing.T) {
	if got := deviceKey("abc"); got != "device:abc" {
		t.Fatalf("unexpected device key %q", got)
	}
	if got := checkoutKey("abc", "k-1"); got != "checkout:abc:k-1" {
		t.Fatalf("unexpected checkout key %q", got)
	}
}

func TestNewDeviceStorage_DefaultTTL(t *testing.T) {
	if s := NewDeviceStorage(nil, 0); s.ttl != defaultDeviceTTL {
		t.Fatalf("expected default ttl, got %s", s.ttl)
	}
	if s := NewDeviceStorage(nil, time.Minute); s.ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %s", s.ttl)
	}
}

func TestOptions(t *testing.T) {
	o := options(Config{Addr: "cache:6379", Password: "s3cret", DB: 2, PoolSize: 20})
	if o.Addr != "cache:6379" || o.Password != "s3cret" || o.DB != 2 || o.PoolSize != 20 {
		t.Fatalf("settings not carried over: %+v", o)
	}
	if o.ClientName != clientName {
		t.Fatalf("expected client name %q, got %q", clientName, o.ClientName)
	}
	if o.DialTimeout != dialTimeout {
		t.Fatalf("expected default dial timeout, got %s", o.DialTimeout)
	}
	if o := options(Config{Timeout: time.Second}); o.DialTimeout != time.Second {
		t.Fatalf("expected 1s dial timeout, got %s", o.DialTimeout)
	}
}
