package selfcheck

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllScenariosPass(t *testing.T) {
	color.NoColor = true //nolint:reassign // keep output free of escape codes

	var buf bytes.Buffer
	err := Run(context.Background(), &buf, log.New(io.Discard, "", 0))
	require.NoError(t, err, buf.String())

	out := buf.String()
	assert.NotContains(t, out, "FAIL")
	assert.Equal(t, len(Scenarios()), strings.Count(out, "PASS "))
	assert.Contains(t, out, "15/15 scenarios passed")
}

func TestScenarios_MatchWeekdayTable(t *testing.T) {
	scenarios := Scenarios()
	require.Len(t, scenarios, 15)
	assert.Equal(t, "Sunday 1", scenarios[0].Expected)
	assert.Equal(t, "Saturday 1", scenarios[6].Expected)
}
