package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pasfmt/pasfmt/pkgs/config"
)

func TestFormatLowercasesAndSpacesComments(t *testing.T) {
	cfg := config.DefaultFormattingConfig()
	out, diags := Format("PROCEDURE p;\nBEGIN\n//hi\nEND;", cfg)
	assert.Empty(t, diags)
	assert.Contains(t, out, "procedure")
	assert.Contains(t, out, "begin")
	assert.Contains(t, out, "// hi")
	assert.Contains(t, out, "end;")
}

func TestFormatIsIdempotent(t *testing.T) {
	cfg := config.DefaultFormattingConfig()
	out, _ := Format("TYPE\n  TFoo = CLASS\n  END;", cfg)
	assert.True(t, IsIdempotent(out, cfg))
}

func TestFormatPreservesFrozenRange(t *testing.T) {
	cfg := config.DefaultFormattingConfig()
	out, _ := Format("{pasfmt off}\nBEGIN\n{pasfmt on}", cfg)
	assert.Contains(t, out, "BEGIN")
}

func TestFormatReportsUnterminatedLiteral(t *testing.T) {
	cfg := config.DefaultFormattingConfig()
	_, diags := Format("x := 'unterminated;\nend.", cfg)
	found := false
	for _, d := range diags {
		if d.Message != "" {
			found = true
		}
	}
	assert.True(t, found)
}
