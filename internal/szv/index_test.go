package szv

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexLine(t *testing.T, fields ...string) string {
	t.Helper()
	line, err := EncodeHexLine(fields, nil)
	require.NoError(t, err)
	return line
}

func writeCredentialFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SZV.dat")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestCheckLogin_EndToEnd(t *testing.T) {
	path := writeCredentialFile(t, hexLine(t, "TOKEN123", "x,y,Novak,Jan,PRE001"))

	ix, err := LoadIndex(path, nil)
	require.NoError(t, err)
	require.Equal(t, 1, ix.Len())

	id, err := ix.CheckLogin("TOKEN123")
	require.NoError(t, err)
	assert.Equal(t, Identity{Surname: "Novak", GivenName: "Jan", Prefix: "PRE001"}, id)

	_, err = ix.CheckLogin("WRONGPASS")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckLogin_TrimsPasswordAndAttributes(t *testing.T) {
	ix, err := ReadIndex(strings.NewReader(hexLine(t, "0012345", "1, 2 , Dvořák ,  Jiří, P07 ,extra")), nil)
	require.NoError(t, err)

	id, err := ix.CheckLogin("  0012345\n")
	require.NoError(t, err)
	assert.Equal(t, Identity{Surname: "Dvořák", GivenName: "Jiří", Prefix: "P07"}, id)
}

func TestCheckLogin_MalformedRecord(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"three attributes", []string{"secret", "a,b,OnlySurname"}},
		{"four attributes", []string{"secret", "a,b,Novak,Jan"}},
		{"token only", []string{"secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, err := ReadIndex(strings.NewReader(hexLine(t, tt.fields...)), nil)
			require.NoError(t, err)
			_, ok := ix.Lookup(Digest("secret"))
			require.True(t, ok, "digest must match")

			id, err := ix.CheckLogin("secret")
			require.ErrorIs(t, err, ErrMalformedRecord)
			assert.NotErrorIs(t, err, ErrNotFound)
			assert.Equal(t, Identity{}, id)
		})
	}
}

func TestCheckLogin_AttributesSpanningExtraSeparators(t *testing.T) {
	ix, err := ReadIndex(strings.NewReader(hexLine(t, "tok", "a,b", "Novak,Jan,P1")), nil)
	require.NoError(t, err)

	id, err := ix.CheckLogin("tok")
	require.NoError(t, err)
	assert.Equal(t, "P1", id.Prefix)
}

func TestReadIndex_LastWriteWins(t *testing.T) {
	ix, err := ReadIndex(strings.NewReader(strings.Join([]string{
		hexLine(t, "dup", "a,b,First,One,P1"),
		hexLine(t, "other", "a,b,Other,Two,P2"),
		hexLine(t, "dup", "a,b,Second,Three,P3"),
	}, "\n")), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, []int{3}, ix.Overwritten)

	id, err := ix.CheckLogin("dup")
	require.NoError(t, err)
	assert.Equal(t, Identity{Surname: "Second", GivenName: "Three", Prefix: "P3"}, id)
}

func TestReadIndex_SkipsCorruptLines(t *testing.T) {
	undefined := hex.EncodeToString(xorStream([]byte{'x', 0x98, 'y'}))
	ix, err := ReadIndex(strings.NewReader(strings.Join([]string{
		"NOT-HEX",
		"",
		"ABC",
		undefined,
		hexLine(t, "TOKEN123", "x,y,Novak,Jan,PRE001"),
	}, "\n")), nil)
	require.NoError(t, err)

	require.Equal(t, 1, ix.Len())
	require.Len(t, ix.Skipped, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{ix.Skipped[0].Line, ix.Skipped[1].Line, ix.Skipped[2].Line})
	for _, le := range ix.Skipped {
		assert.ErrorIs(t, le, ErrLineDecode)
	}

	_, err = ix.CheckLogin("TOKEN123")
	assert.NoError(t, err)
}

func TestReadIndex_OverlongLineIsSkipped(t *testing.T) {
	long := strings.Repeat("Z", 1<<20+10)
	ix, err := ReadIndex(strings.NewReader(long+"\n"+hexLine(t, "TOKEN123", "x,y,Novak,Jan,PRE001")), nil)
	require.NoError(t, err)

	require.Len(t, ix.Skipped, 1)
	assert.Equal(t, 1, ix.Skipped[0].Line)
	assert.ErrorIs(t, ix.Skipped[0], ErrLineDecode)

	id, err := ix.CheckLogin("TOKEN123")
	require.NoError(t, err)
	assert.Equal(t, "PRE001", id.Prefix)
}

func TestReadIndex_LongValidLine(t *testing.T) {
	attrs := "x,y,Novak,Jan,PRE001," + strings.Repeat("n", 1<<20)
	ix, err := ReadIndex(strings.NewReader(hexLine(t, "BIG", attrs)+"\n"), nil)
	require.NoError(t, err)

	id, err := ix.CheckLogin("BIG")
	require.NoError(t, err)
	assert.Equal(t, "PRE001", id.Prefix)
}

func TestReadIndex_BlankLinesAreNotRecords(t *testing.T) {
	ix, err := ReadIndex(strings.NewReader("\n   \r\n\t\n"+hexLine(t, "TOKEN123", "x,y,Novak,Jan,PRE001")+"\n\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, ix.Len())
	assert.Empty(t, ix.Skipped)
	_, ok := ix.Lookup(Digest(""))
	assert.False(t, ok)

	_, err = ix.CheckLogin("")
	assert.ErrorIs(t, err, ErrNotFound)

	r, ok := ix.Lookup(Digest("TOKEN123"))
	require.True(t, ok)
	assert.Equal(t, 4, r.Line)
}

func TestLoadIndex_MissingFile(t *testing.T) {
	_, err := LoadIndex(filepath.Join(t.TempDir(), "absent.dat"), nil)
	require.ErrorIs(t, err, ErrFileAccess)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecord_Accessors(t *testing.T) {
	r := Record{Line: 1, Fields: []string{"tok", "a,b,c"}}
	assert.Equal(t, "tok", r.Token())
	assert.Equal(t, "tok,a,b,c", r.Joined())
	assert.Equal(t, []string{"a", "b", "c"}, r.Attributes())

	assert.Nil(t, Record{Fields: []string{"tok"}}.Attributes())
	assert.Equal(t, "", Record{}.Token())
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Digest(""))
	assert.Equal(t, "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b", Digest("secret"))
}
