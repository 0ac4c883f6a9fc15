package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidpereyra2016/cv-generador/internal/config"
	"github.com/davidpereyra2016/cv-generador/internal/cv"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(config.StoreConfig{Dir: filepath.Join(t.TempDir(), "pending")}, nil)
	require.NoError(t, err)
	return s
}

func sampleSubmission() *cv.Submission {
	return &cv.Submission{
		Nombre:   "ana gomez",
		Email:    "a@x.com",
		Telefono: "11-5555-0000",
		Experiencia: []cv.Experience{
			{Empresa: "acme", Cargo: "dev", Periodo: "2020-2021", Descripcion: "built things"},
			{Empresa: "globex", Cargo: "sre", Periodo: "2021-2023", Descripcion: "kept things up"},
		},
		Educacion: []cv.Education{
			{Institucion: "uba", Titulo: "lic. sistemas", Anio: "2019"},
		},
		Habilidades:  []string{"go", "sql"},
		TemplateType: cv.TemplateBasico,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := sampleSubmission()

	id, err := s.Save(in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	out, err := s.Load(id)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestLoadUnknownID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("3b6e4a0e-5f8e-4ad9-9c3e-111111111111")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsNonUUIDIDs(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"", "   ", "../../etc/passwd", "not-a-uuid"} {
		_, err := s.Load(id)
		require.ErrorIs(t, err, ErrNotFound, "id=%q", id)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Save(sampleSubmission())
	require.NoError(t, err)

	s.Delete(id)
	s.Delete(id) // second delete must not panic or log-fatal

	_, err = s.Load(id)
	require.ErrorIs(t, err, ErrNotFound)
}
