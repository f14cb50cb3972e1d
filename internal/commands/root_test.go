package commands_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/koinlyconv/internal/commands"
	"github.com/cleared-dev/koinlyconv/internal/convert"
	"github.com/cleared-dev/koinlyconv/internal/koinly"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "koinlyconv-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "koinlyconv")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/koinlyconv")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runBinary(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

func runInProcess(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func testdata(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvert_Deposits(t *testing.T) {
	out, _, err := runBinary(t, testdata("deposits.csv"))
	require.NoError(t, err)

	rows, err := koinly.ReadRows(strings.NewReader(out))
	require.NoError(t, err)

	var ids []string
	for _, r := range rows {
		ids = append(ids, r.TradeID)
		assert.Equal(t, "Sell", string(r.Side))
		assert.Equal(t, "USD", r.FeeCurrency)
		assert.Empty(t, r.FeeAmount)
		assert.Equal(t, r.Amount, r.Total)
	}
	assert.Equal(t, []string{"abcTXID", "0x77aa", "0x88bb, batch 2"}, ids)
	assert.True(t, strings.HasPrefix(out, koinly.Header+"\n"))
	assert.Contains(t, out, "2023-01-01T00:00:00Z,USDC/USD,Sell,100.50,100.50,,USD,,abcTXID\n")
	assert.Contains(t, out, "BUSD/USD,Sell,1000.000000,1000.000000,")
}

func TestConvert_Withdrawals(t *testing.T) {
	out, _, err := runBinary(t, testdata("withdrawals.csv"))
	require.NoError(t, err)

	want := koinly.Header + "\n" +
		"2023-02-01T00:00:00Z,BUSD/USD,Buy,50.00,50.00,0.50,BUSD,,txid2\n" +
		"2023-02-03T11:00:00Z,USDP/USD,Buy,20,20,0,USDP,,txid3\n"
	assert.Equal(t, want, out)
}

func TestConvert_EmptyInput(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	out, stderr, err := runBinary(t, path)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "input has no rows")
}

func TestConvert_HeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "id,time,coin,size,status,address,txid,fee\n")
	out, _, err := runInProcess(t, path)
	assert.ErrorIs(t, err, convert.ErrInputEmpty)
	assert.Empty(t, out)
}

func TestConvert_UsageErrors(t *testing.T) {
	_, stderr, err := runBinary(t)
	require.Error(t, err)
	assert.Contains(t, stderr, "expected exactly one input file")

	_, _, err = runBinary(t, "a.csv", "b.csv")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode())

	_, _, err = runInProcess(t)
	var usage *commands.UsageError
	assert.True(t, errors.As(err, &usage))
}

func TestConvert_MissingFile(t *testing.T) {
	_, _, err := runInProcess(t, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "opening input")
}

func TestConvert_MalformedRowKeepsEarlierOutput(t *testing.T) {
	path := writeFile(t, "bad.csv", "id,time,coin,size,status,additionalInfo,txid,_delete\n"+
		"1,2023-01-01,USDC,1,OK,,tx-a,\n"+
		"2,2023-01-02,USDC\n")

	out, stderr, err := runBinary(t, path)
	require.Error(t, err)
	assert.Contains(t, stderr, "row 3")
	assert.Equal(t, koinly.Header+"\n"+"2023-01-01,USDC/USD,Sell,1,1,,USD,,tx-a\n", out)
}

func TestConvert_Summary(t *testing.T) {
	out, stderr, err := runInProcess(t, "--summary", testdata("withdrawals.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "txid2")
	assert.NotContains(t, out, "BUSD/USD |")
	assert.Contains(t, stderr, "BUSD/USD")
	assert.Contains(t, stderr, "USDP/USD")
}

func TestConvert_Verbose(t *testing.T) {
	_, stderr, err := runInProcess(t, "-v", testdata("deposits.csv"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "conversion finished")
	assert.Contains(t, stderr, "kind=deposit")
	assert.Contains(t, stderr, "written=3")
}

func TestConvert_Quiet(t *testing.T) {
	_, stderr, err := runInProcess(t, testdata("deposits.csv"))
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestConvert_Config(t *testing.T) {
	cfgPath := writeFile(t, "koinlyconv.yaml", "filter:\n  stablecoins: [ETH]\n  transfer_marker: Transfer from\n")
	out, _, err := runInProcess(t, "--config", cfgPath, testdata("deposits.csv"))
	require.NoError(t, err)

	rows, err := koinly.ReadRows(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ETH/USD", rows[0].Pair)
}

func TestConvert_BadConfig(t *testing.T) {
	cfgPath := writeFile(t, "koinlyconv.yaml", "filter:\n  stablecoins: []\n")
	_, _, err := runInProcess(t, "--config", cfgPath, testdata("deposits.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestVersion(t *testing.T) {
	out, _, err := runBinary(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
