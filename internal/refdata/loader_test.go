package refdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sympcheck/sympcheck/internal/refdata"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// writeFixtures lays down a minimal consistent data directory.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "Symptom_severity.csv",
		"Symptom,weight\n"+
			"itching,1\n"+
			"skin_rash,3\n"+
			"fatigue,4\n"+
			"headache,3\n")

	writeFile(t, dir, "symptom_Description.csv",
		"Disease,Description\n"+
			"Fungal infection,A common fungal infection of the skin.\n"+
			"Migraine,A neurological headache disorder.\n")

	writeFile(t, dir, "symptom_precaution.csv",
		"Disease,Precaution_1,Precaution_2,Precaution_3,Precaution_4\n"+
			"Fungal infection,bath twice,use clean cloths,nan,\n"+
			"Migraine,rest in a dark room,NaN,stay hydrated,nan\n")

	writeFile(t, dir, "Training.csv",
		"itching,skin_rash,fatigue,headache,prognosis\n"+
			"1,1,0,0,Fungal infection\n"+
			"0,0,1,1,Migraine\n"+
			"1,0,0,0,Fungal infection\n")

	return dir
}

func TestLoad_Severity(t *testing.T) {
	store, err := refdata.Load(writeFixtures(t))
	require.NoError(t, err)

	assert.Equal(t, 1, store.Weight("itching"))
	assert.Equal(t, 3, store.Weight("skin_rash"))
	assert.Equal(t, 0, store.Weight("no_such_symptom"))
	assert.Equal(t, []string{"itching", "skin_rash", "fatigue", "headache"}, store.Symptoms())
}

func TestLoad_DescriptionsWithFallback(t *testing.T) {
	store, err := refdata.Load(writeFixtures(t))
	require.NoError(t, err)

	assert.Equal(t, "A neurological headache disorder.", store.Description("Migraine"))
	assert.Equal(t, refdata.DefaultDescription, store.Description("Unknown Disease"))
}

func TestLoad_PrecautionsDropBlanksAndNan(t *testing.T) {
	store, err := refdata.Load(writeFixtures(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"bath twice", "use clean cloths"}, store.Precautions("Fungal infection"))
	assert.Equal(t, []string{"rest in a dark room", "stay hydrated"}, store.Precautions("Migraine"))
	assert.Equal(t, []string{refdata.DefaultPrecaution}, store.Precautions("Unknown Disease"))
}

func TestLoad_TrainingTable(t *testing.T) {
	store, err := refdata.Load(writeFixtures(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"itching", "skin_rash", "fatigue", "headache"}, store.Columns())

	records := store.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "Fungal infection", records[0].Disease)
	assert.Equal(t, []int{1, 1, 0, 0}, records[0].Present)
	assert.Equal(t, "Migraine", records[1].Disease)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := writeFixtures(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "Training.csv")))

	_, err := refdata.Load(dir)
	require.Error(t, err)
}

func TestLoad_BadSeverityWeight(t *testing.T) {
	dir := writeFixtures(t)
	writeFile(t, dir, "Symptom_severity.csv", "Symptom,weight\nitching,heavy\n")

	_, err := refdata.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad weight")
}

func TestLoad_TrainingMissingPrognosisColumn(t *testing.T) {
	dir := writeFixtures(t)
	writeFile(t, dir, "Training.csv", "itching,skin_rash\n1,0\n")

	_, err := refdata.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prognosis")
}

func TestLoad_TrainingBadCell(t *testing.T) {
	dir := writeFixtures(t)
	writeFile(t, dir, "Training.csv",
		"itching,skin_rash,fatigue,headache,prognosis\n"+
			"1,yes,0,0,Fungal infection\n")

	_, err := refdata.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad value")
}
