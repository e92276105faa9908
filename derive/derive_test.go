package derive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hareeshbabu82ns/vyakarana/dhatupatha"
	"github.com/hareeshbabu82ns/vyakarana/grammar"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *dhatupatha.Dhatupatha {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dhatupatha.csv")
	csv := "1,0001,BU\n8,0001,qukf\\Y\n5,0001,sta\\mBu~\n9,0001,qukrI\\Y\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	dp, err := dhatupatha.Load(path)
	require.NoError(t, err)
	return dp
}

func scenario(t *testing.T, dhatuRaw string) []*upadesha.Upadesha {
	t.Helper()
	dhatu, err := grammar.Dhatu(dhatuRaw)
	require.NoError(t, err)
	tin, err := grammar.Vibhakti("tip")
	require.NoError(t, err)
	return []*upadesha.Upadesha{dhatu, tin}
}

func TestDeriveBhavatiFromBhvadiBhu(t *testing.T) {
	dp := loadFixture(t)
	forms, err := Derive(dp, grammar.DefaultGanaBoundaries, scenario(t, "BU"), Options{})
	require.NoError(t, err)
	require.Contains(t, forms, "Bavati")
}

func TestDeriveKarotiFromTanadiKr(t *testing.T) {
	dp := loadFixture(t)
	forms, err := Derive(dp, grammar.DefaultGanaBoundaries, scenario(t, "qukf\\Y"), Options{})
	require.NoError(t, err)
	require.Contains(t, forms, "karoti")
}

func TestDeriveStabhnotiFromStambhu(t *testing.T) {
	dp := loadFixture(t)
	forms, err := Derive(dp, grammar.DefaultGanaBoundaries, scenario(t, "sta\\mBu~"), Options{})
	require.NoError(t, err)
	require.Contains(t, forms, "staBnoti")
}

func TestDeriveKrinatiFromKryadiKri(t *testing.T) {
	dp := loadFixture(t)
	forms, err := Derive(dp, grammar.DefaultGanaBoundaries, scenario(t, "qukrI\\Y"), Options{})
	require.NoError(t, err)
	require.Contains(t, forms, "krIRAti")
}

func TestDeriveReturnsConfigErrorOnUnknownBoundaryRoot(t *testing.T) {
	dp := loadFixture(t)
	bad := grammar.GanaBoundaries{Gana1Bhvadi: "nonexistent", Gana8Tanadi: "qukf\\Y", Gana9Kryadi: "qukrI\\Y"}
	_, err := Derive(dp, bad, scenario(t, "BU"), Options{})
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestDeriveWithRulesDeduplicatesIdenticalSurfaceForms(t *testing.T) {
	dp := loadFixture(t)
	rules, err := grammar.AllRules(dp, grammar.DefaultGanaBoundaries)
	require.NoError(t, err)

	forms, err := DeriveWithRules(rules, scenario(t, "BU"), Options{})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, f := range forms {
		require.False(t, seen[f], "form %q produced more than once", f)
		seen[f] = true
	}
}

func TestDeriveRespectsMaxSteps(t *testing.T) {
	dp := loadFixture(t)
	_, err := Derive(dp, grammar.DefaultGanaBoundaries, scenario(t, "BU"), Options{MaxSteps: 1})
	require.Error(t, err)
	var derivErr *DerivationError
	require.ErrorAs(t, err, &derivErr)
}
