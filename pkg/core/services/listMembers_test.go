package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
)

func consolidatedRoster() []model.Member {
	desalocada := model.Member{Membro: "lia.livre", CargoNucleo: "Analista"}

	alocado := model.Member{Membro: "rui.ocupado", CargoNucleo: "Analista"}
	alocado.Projetos[0].Nome = model.NewOptString("Projeto Alfa")
	alocado.Projetos[1].Nome = model.NewOptString("Projeto Beta")

	sobrecarregada := model.Member{
		Membro:        "eva.cheia",
		CargoNucleo:   "Consultora",
		Aprendizagens: model.ParseOptFloat("3"),
	}
	for i := range sobrecarregada.Projetos {
		sobrecarregada.Projetos[i].Nome = model.NewOptString("Projeto")
	}

	return []model.Member{desalocada, alocado, sobrecarregada}
}

func TestListMembers_AllRows(t *testing.T) {
	store := &mockRosterStore{
		members: map[string][]model.Member{"NDados": consolidatedRoster()},
	}

	result, err := ListMembers(context.Background(), store, testConfig(), zap.NewNop(), ListMembersParams{
		Nucleo: "NDados",
		Now:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, "Desalocado", result.Rows[0].Bucket)
	assert.Equal(t, "2 Alocações", result.Rows[1].Bucket)
	assert.Equal(t, "4+ Alocações", result.Rows[2].Bucket)
}

func TestListMembers_BucketFilter(t *testing.T) {
	store := &mockRosterStore{
		members: map[string][]model.Member{"NDados": consolidatedRoster()},
	}

	result, err := ListMembers(context.Background(), store, testConfig(), zap.NewNop(), ListMembersParams{
		Nucleo:    "NDados",
		Alocacoes: "Desalocado",
	})

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "lia.livre", result.Rows[0].Member.Membro)
}

func TestListMembers_OpenEndedBucketFilter(t *testing.T) {
	store := &mockRosterStore{
		members: map[string][]model.Member{"NDados": consolidatedRoster()},
	}

	result, err := ListMembers(context.Background(), store, testConfig(), zap.NewNop(), ListMembersParams{
		Nucleo:    "NDados",
		Alocacoes: "4+ Alocações",
	})

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "eva.cheia", result.Rows[0].Member.Membro)
}

func TestListMembers_CargoFilterIgnoresCaseAndAccents(t *testing.T) {
	store := &mockRosterStore{
		members: map[string][]model.Member{"NDados": consolidatedRoster()},
	}

	result, err := ListMembers(context.Background(), store, testConfig(), zap.NewNop(), ListMembersParams{
		Nucleo: "NDados",
		Cargo:  "CONSULTORA",
	})

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "eva.cheia", result.Rows[0].Member.Membro)
}

func TestListMembers_UnknownBucket(t *testing.T) {
	store := &mockRosterStore{
		members: map[string][]model.Member{"NDados": consolidatedRoster()},
	}

	_, err := ListMembers(context.Background(), store, testConfig(), zap.NewNop(), ListMembersParams{
		Nucleo:    "NDados",
		Alocacoes: "5 Alocações",
	})

	assert.Error(t, err)
}

func TestListMembers_EmptyResultIsNotice(t *testing.T) {
	store := &mockRosterStore{
		members: map[string][]model.Member{"NDados": consolidatedRoster()},
	}

	result, err := ListMembers(context.Background(), store, testConfig(), zap.NewNop(), ListMembersParams{
		Nucleo: "NDados",
		Membro: "ninguem.daqui",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}
