package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	zeroSeed   = "0000000000000000000000000000000000000000000000000000000000000000"
	ratchetKey = "e3beb94e7017370c018fa97eef04fb23acea28f7a956cc1d46f3b51d7d7d5e2c"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDerive_Send(t *testing.T) {
	// Act.
	out, err := run(t, "derive", "--seed", zeroSeed, "--ratchet-key", ratchetKey, "-n", "2")

	// Assert.
	require.Nil(t, err)
	require.Equal(t,
		"0 3d7afb663124ecbf2c953f863d4fc8796eeb2d372b64aad58697ec5264649cdb "+ratchetKey+"\n"+
			"1 e43cd1fae55cf944828336e277738f684c1e221777e6ea5f036642c10053f158 "+ratchetKey+"\n",
		out)
}

func TestDerive_RecvFromIndex(t *testing.T) {
	// Act.
	out, err := run(t, "derive", "--role", "recv",
		"--seed", "4ee7be0c7872360ca67414608081e9bd60fd580a7bbd209701d2a5a0b4316d0d", "--index", "1", "-n", "2")

	// Assert.
	require.Nil(t, err)
	require.Equal(t,
		"1 e43cd1fae55cf944828336e277738f684c1e221777e6ea5f036642c10053f158\n"+
			"2 7718295d45e4164b6a1e75b3a1d88c5684fb0289c977bc10e8abeb74ead7601b\n",
		out)
}

func TestDerive_InvalidInput(t *testing.T) {
	testcases := []struct {
		name string
		args []string
	}{
		{"missing seed", []string{"derive"}},
		{"short seed", []string{"derive", "--seed", "00ff"}},
		{"not hex", []string{"derive", "--seed", "zz"}},
		{"unknown role", []string{"derive", "--seed", zeroSeed, "--role", "both"}},
		{"negative count", []string{"derive", "--seed", zeroSeed, "-n", "-1"}},
		{"bad ratchet key", []string{"derive", "--seed", zeroSeed, "--ratchet-key", "00"}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			// Act.
			_, err := run(t, tc.args...)

			// Assert.
			require.NotNil(t, err)
		})
	}
}

func TestKeygen(t *testing.T) {
	// Act.
	out, err := run(t, "keygen")

	// Assert.
	require.Nil(t, err)
	require.Len(t, strings.TrimSpace(out), 64)
}

func TestPickle_Binary(t *testing.T) {
	// Act.
	out, err := run(t, "pickle", "--seed", zeroSeed, "--index", "258")

	// Assert.
	require.Nil(t, err)
	require.Equal(t, zeroSeed+"00000102\n", out)
}

func TestPickleUnpickle(t *testing.T) {
	for _, format := range []string{"binary", "cbor"} {
		t.Run(format, func(t *testing.T) {
			// Arrange.
			record, err := run(t, "pickle", "--role", "recv", "--format", format,
				"--seed", "4ee7be0c7872360ca67414608081e9bd60fd580a7bbd209701d2a5a0b4316d0d", "--index", "1")
			require.Nil(t, err)

			// Act.
			out, err := run(t, "unpickle", "--role", "recv", "--format", format, "--record", strings.TrimSpace(record))

			// Assert.
			require.Nil(t, err)
			require.Equal(t, "1 e43cd1fae55cf944828336e277738f684c1e221777e6ea5f036642c10053f158\n", out)
		})
	}
}

func TestUnpickle_InvalidRecord(t *testing.T) {
	// Act.
	_, err := run(t, "unpickle", "--record", "0011")

	// Assert.
	require.NotNil(t, err)
}
