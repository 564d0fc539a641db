package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Fatalf("unexpected encoding: %s", encoded)
	}

	if !Verify("correct horse battery staple", encoded) {
		t.Fatal("correct password rejected")
	}
	if Verify("wrong password", encoded) {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyRejectsMalformedEncodings(t *testing.T) {
	encoded, err := Hash("a password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	parts := strings.Split(encoded, "$")

	malformed := []string{
		"",
		"plain-text",
		"$argon2i$v=19$m=65536,t=1,p=4$" + parts[4] + "$" + parts[5],
		"$argon2id$v=18$m=65536,t=1,p=4$" + parts[4] + "$" + parts[5],
		"$argon2id$v=19$m=65536,t=1$" + parts[4] + "$" + parts[5],
		"$argon2id$v=19$m=65536,t=1,p=4$not!base64$" + parts[5],
		"$argon2id$v=19$m=65536,t=1,p=4$" + parts[4],
	}
	for _, bad := range malformed {
		if Verify("a password", bad) {
			t.Fatalf("malformed encoding accepted: %q", bad)
		}
	}
}
