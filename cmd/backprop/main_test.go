package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_Version(t *testing.T) {
	out, _, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "backprop "+version+"\n", out)
}

func TestRun_Usage(t *testing.T) {
	out, _, err := runCmd(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Commands:")

	_, stderr, err := runCmd(t, "serve")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr, `unknown command "serve"`)
}

func TestRun_Help(t *testing.T) {
	_, stderr, err := runCmd(t, "train", "-h")
	require.NoError(t, err)
	assert.Contains(t, stderr, "-epochs")
}

func TestRun_BadFlags(t *testing.T) {
	_, _, err := runCmd(t, "train", "-no-such-flag")
	assert.ErrorIs(t, err, errUsage)

	_, _, err = runCmd(t, "train", "extra")
	assert.ErrorIs(t, err, errUsage)

	_, _, err = runCmd(t, "train", "-dataset", "moons")
	assert.ErrorContains(t, err, "unknown dataset")
}

func TestRun_Train(t *testing.T) {
	out, stderr, err := runCmd(t, "train", "-samples", "40", "-epochs", "300", "-lr", "1", "-log-every", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "loss     before=")
	assert.Contains(t, out, "accuracy before=")
	assert.Contains(t, stderr, "cmd=train")
	assert.Contains(t, stderr, "epoch=0 ")
	assert.Contains(t, stderr, "epoch=299 ")
	assert.Contains(t, stderr, "state=finished epochs_done=300 lr=1")
}

func TestRun_TrainFromConfigAndCSV(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(data, []byte("x1,x2,label\n-1,-1,0\n-2,-1,0\n1,1,1\n2,1,1\n"), 0o600))
	cfgPath := filepath.Join(dir, "run.yaml")
	yaml := fmt.Sprintf("dataset: csv\ndata_path: %q\nstandardize: true\nepochs: 50\nlr: 0.5\n", data)
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))

	out, stderr, err := runCmd(t, "train", "-config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "accuracy")
	assert.Contains(t, stderr, "dataset=csv samples=4 features=2")
}

func TestRun_Gradcheck(t *testing.T) {
	out, _, err := runCmd(t, "gradcheck", "-samples", "10", "-dataset", "xor", "-hidden", "4")
	require.NoError(t, err)

	for _, name := range []string{"W1", "b1", "W2", "b2"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "ok max_rel_err=")
}

func TestRun_Sweep(t *testing.T) {
	out, _, err := runCmd(t, "sweep", "-samples", "20", "-epochs", "10", "-lrs", "0.1, 0.5", "-workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "lr"))
	assert.True(t, strings.HasPrefix(lines[1], "0.1 "))
	assert.True(t, strings.HasPrefix(lines[2], "0.5 "))
}

func TestRun_Grid(t *testing.T) {
	out, _, err := runCmd(t, "grid", "-samples", "20", "-epochs", "10", "-steps", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "x,y,p", lines[0])

	path := filepath.Join(t.TempDir(), "grid.csv")
	_, _, err = runCmd(t, "grid", "-samples", "20", "-epochs", "10", "-steps", "4", "-out", path)
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(written)), "\n"), 17)
}

func TestFloatList(t *testing.T) {
	var l floatList
	require.NoError(t, l.Set("0.1, 1,,2e-1"))
	assert.Equal(t, floatList{0.1, 1, 0.2}, l)
	assert.Equal(t, "0.1,1,0.2", l.String())

	assert.Error(t, l.Set("fast"))
}

func TestRun_TrainZeroEpochs(t *testing.T) {
	out, stderr, err := runCmd(t, "train", "-samples", "10", "-epochs", "0", "-seed", "0")
	require.NoError(t, err)

	assert.Contains(t, stderr, "epochs=0 ")
	assert.Contains(t, stderr, "state=finished epochs_done=0")
	assert.NotContains(t, stderr, "epoch=0 ")

	// No update ran, so the loss is unchanged.
	var before, after float64
	_, err = fmt.Sscanf(strings.SplitN(out, "\n", 2)[0], "loss     before=%f after=%f", &before, &after)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRun_RejectsNaNNoise(t *testing.T) {
	_, _, err := runCmd(t, "train", "-noise", "NaN")
	assert.ErrorContains(t, err, "noise")
}

func TestWriteGrid(t *testing.T) {
	grid := mat.NewDense(2, 2, []float64{0, 0, 1, 1})
	probs := mat.NewVecDense(2, []float64{0.25, 0.75})

	path := filepath.Join(t.TempDir(), "grid.csv")
	require.NoError(t, writeGrid(path, nil, grid, probs))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y,p\n0,0,0.25\n1,1,0.75\n", string(written))

	err = writeGrid(filepath.Join(t.TempDir(), "missing", "grid.csv"), nil, grid, probs)
	assert.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeGrid("", &buf, grid, probs))
	assert.Equal(t, string(written), buf.String())
}

func TestRun_SweepBestEpoch(t *testing.T) {
	out, _, err := runCmd(t, "sweep", "-samples", "20", "-epochs", "5", "-lrs", "0.5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"lr", "first_loss", "final_loss", "best_epoch", "accuracy"}, strings.Fields(lines[0]))
	assert.Len(t, strings.Fields(lines[1]), 5)
}
