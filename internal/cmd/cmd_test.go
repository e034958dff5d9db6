package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/carebot/internal/reporter"
)

const testVectors = `6 2
good 1.0 0.0
fine 0.9 0.1
great 1.0 0.2
sick -1.0 0.0
ill -0.9 -0.1
bad -1.0 -0.2
`

const testDataset = `Lexicon,Label
I feel good,0
feeling fine,0
great,0
I am sick,1
so ill,1
bad,1
`

// writeFixtures writes embeddings, a dataset and a config file referencing
// them, and returns the config path.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	vectors := filepath.Join(dir, "w2v.txt")
	data := filepath.Join(dir, "dataset.csv")
	if err := os.WriteFile(vectors, []byte(testVectors), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(data, []byte(testDataset), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := "embeddings: " + vectors + "\ndataset: " + data + "\n"
	path := filepath.Join(dir, "carebot.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"CAREBOT_EMBEDDINGS", "CAREBOT_DATASET", "CAREBOT_MODEL", "CAREBOT_CLASSIFIER", "CAREBOT_MENU_RETRY_BOUND"} {
		t.Setenv(env, "")
	}
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "carebot ") {
		t.Errorf("version output = %q", out)
	}
}

func TestChat(t *testing.T) {
	cfg := writeFixtures(t)
	input := strings.Join([]string{
		"Jane Doe 01/31/90",
		"I am sick",
		"I was walking in the park and I saw a dog.",
		"a",
	}, "\n") + "\n"

	out, err := execute(t, input, "-c", cfg)
	if err != nil {
		t.Fatalf("chat error = %v\n%s", err, out)
	}
	for _, want := range []string{
		"Thanks Jane! I'll make a note that you were born on 01/31/90",
		"It sounds like you're unhealthy.",
		"psychological correlates",
		"See you again!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestChat_MissingEmbeddings(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "carebot.yaml")
	if err := os.WriteFile(cfg, []byte("embeddings: "+filepath.Join(dir, "missing.txt")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "", "-c", cfg)
	if err == nil || !strings.Contains(err.Error(), "failed to load embeddings") {
		t.Errorf("error = %v, want embeddings failure", err)
	}
}

func TestTrainThenChatWithModel(t *testing.T) {
	cfg := writeFixtures(t)
	model := filepath.Join(t.TempDir(), "model.json")

	out, err := execute(t, "", "train", "-c", cfg, "--model", "svm", "--out", model)
	if err != nil {
		t.Fatalf("train error = %v", err)
	}
	if !strings.Contains(out, "Trained svm on 6 examples") {
		t.Errorf("train output = %q", out)
	}
	if _, err := os.Stat(model); err != nil {
		t.Fatalf("model not written: %v", err)
	}

	t.Setenv("CAREBOT_MODEL", model)
	var buf bytes.Buffer
	RootCmd.SetIn(strings.NewReader("Jane Doe 01/31/90\nfeeling great\n"))
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"-c", cfg})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("chat error = %v", err)
	}
	if !strings.Contains(buf.String(), "It sounds like you're healthy.") {
		t.Errorf("chat output missing healthy verdict\n%s", buf.String())
	}
}

func TestTrain_RejectsLLM(t *testing.T) {
	cfg := writeFixtures(t)
	if _, err := execute(t, "", "train", "-c", cfg, "--model", "llm", "--out", "x.json"); err == nil {
		t.Error("training the llm backend should fail")
	}
}

func TestEvaluateJSON(t *testing.T) {
	cfg := writeFixtures(t)

	out, err := execute(t, "", "evaluate", "-c", cfg, "--test", filepath.Join(filepath.Dir(cfg), "dataset.csv"), "--format", "json")
	if err != nil {
		t.Fatalf("evaluate error = %v", err)
	}

	var got reporter.JSONOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(got.Models) != 3 {
		t.Fatalf("got %d models, want 3", len(got.Models))
	}
	for _, m := range got.Models {
		if m.Accuracy != 1 {
			t.Errorf("%s accuracy = %v, want 1 on separable data", m.Kind, m.Accuracy)
		}
	}
}
