package domain

import (
	"encoding/json"
	"testing"
)

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantType string
		wantErr  bool
	}{
		{
			name:     "user registered",
			body:     `{"event_type":"UserRegistered","user_id":"u1","email":"a@b.c","username":"ada"}`,
			wantType: EventUserRegistered,
		},
		{
			name:     "unknown type still decodes",
			body:     `{"event_type":"SomethingElse"}`,
			wantType: "SomethingElse",
		},
		{
			name:    "not json",
			body:    `{nope`,
			wantErr: true,
		},
		{
			name:    "missing discriminator",
			body:    `{"user_id":"u1"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := DecodeEnvelope([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("DecodeEnvelope() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeEnvelope() error = %v", err)
			}
			if env.EventType != tt.wantType {
				t.Errorf("EventType = %q, want %q", env.EventType, tt.wantType)
			}
			if string(env.Raw) != tt.body {
				t.Errorf("Raw not retained")
			}
		})
	}
}

func TestUserRegisteredRoundTrip(t *testing.T) {
	ev := NewUserRegistered("u1", "ada@example.com", "ada")
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	env, err := DecodeEnvelope(body)
	if err != nil {
		t.Fatalf("DecodeEnvelope() error = %v", err)
	}
	if env.EventType != EventUserRegistered {
		t.Errorf("EventType = %q", env.EventType)
	}

	var decoded UserRegistered
	if err := json.Unmarshal(env.Raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != ev {
		t.Errorf("round trip mismatch: %+v != %+v", decoded, ev)
	}
}
