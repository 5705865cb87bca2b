package txlog

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlighting/rdmresponder/rdm"
)

func TestOpenWithEmptyDirDisablesLogging(t *testing.T) {
	l, err := Open("")
	require.NoError(t, err)
	err = l.Write(Record{Time: time.Unix(0, 0)})
	assert.NoError(t, err)
}

func TestWriteCreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	rec := Record{
		Time:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Src:          rdm.UID{1, 2, 3, 4, 5, 6},
		Dest:         rdm.UID{6, 5, 4, 3, 2, 1},
		CommandClass: rdm.GetCommandResponse,
		ParamID:      rdm.PIDDeviceInfo,
	}
	require.NoError(t, l.Write(rec))

	data, err := os.ReadFile(dir + "/2026-03-01.csv")
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, header)
	assert.Contains(t, content, "0102:03040506")
}

func TestWriteRotatesOnDateChange(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	require.NoError(t, l.Write(Record{Time: time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)}))
	require.NoError(t, l.Write(Record{Time: time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)}))

	_, err = os.Stat(dir + "/2026-03-01.csv")
	assert.NoError(t, err)
	_, err = os.Stat(dir + "/2026-03-02.csv")
	assert.NoError(t, err)
}
