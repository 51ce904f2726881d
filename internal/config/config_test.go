package config

import (
	"reflect"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantPanic bool
	}{
		{
			name:  "variable set",
			key:   "RW_TEST_VAR",
			value: "test_value",
		},
		{
			name:      "variable not set",
			key:       "RW_TEST_VAR_MISSING",
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestRequireEnvInt(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		expected  int
		wantPanic bool
	}{
		{name: "valid integer", key: "RW_TEST_INT", value: "42", expected: 42},
		{name: "invalid integer", key: "RW_TEST_INT_INVALID", value: "not_a_number", wantPanic: true},
		{name: "missing variable", key: "RW_TEST_INT_MISSING", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnvInt() should have panicked")
					}
				}()
			}

			result := requireEnvInt(tt.key)
			if !tt.wantPanic && result != tt.expected {
				t.Errorf("requireEnvInt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "10.0.0.0/8", want: []string{"10.0.0.0/8"}},
		{name: "spaces and quotes", input: ` "a.example.com" , 'b.example.com',, `, want: []string{"a.example.com", "b.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitAndTrim(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RELEASEWATCH_SOURCE", "")
	t.Setenv("RELEASEWATCH_TIMEZONE", "")

	cfg := Load()

	if cfg.Source != SourceFile {
		t.Errorf("Source = %q, want %q", cfg.Source, SourceFile)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Location = %v, want UTC", cfg.Location)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty for file source", cfg.RedisAddr)
	}
	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
}

func TestLoadRedisSource(t *testing.T) {
	t.Setenv("RELEASEWATCH_SOURCE", "Redis")
	t.Setenv("RELEASEWATCH_REDIS_ADDR", "redis:6379")
	t.Setenv("RELEASEWATCH_REDIS_DB", "2")
	t.Setenv("RELEASEWATCH_REDIS_PASSWORD", "hunter2")
	t.Setenv("REDIS_MAX_WAIT", "3s")

	cfg := Load()

	if cfg.Source != SourceRedis {
		t.Errorf("Source = %q, want %q", cfg.Source, SourceRedis)
	}
	if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
		t.Errorf("redis = %s/%d, want redis:6379/2", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.RedisMaxWait != 3*time.Second {
		t.Errorf("RedisMaxWait = %v, want 3s", cfg.RedisMaxWait)
	}
	if red := cfg.Redacted(); red.RedisPassword == "hunter2" {
		t.Error("Redacted() leaked the redis password")
	}
}

func TestLoadRedisSourceRequiresAddr(t *testing.T) {
	t.Setenv("RELEASEWATCH_SOURCE", "redis")
	t.Setenv("RELEASEWATCH_REDIS_ADDR", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic without RELEASEWATCH_REDIS_ADDR")
		}
	}()
	Load()
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("RELEASEWATCH_SOURCE", "postgres")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic on an unknown source")
		}
	}()
	Load()
}
