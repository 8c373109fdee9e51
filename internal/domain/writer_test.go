package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/masthead/internal/domain"
	"github.com/phrazzld/masthead/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantName string
	}{
		{name: "valid name", input: "Carry Bradshaw", wantName: "Carry Bradshaw"},
		{name: "single character", input: "X", wantName: "X"},
		{name: "whitespace is not empty", input: " ", wantName: " "},
		{name: "empty name", input: "", wantErr: domain.ErrWriterNameEmpty},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reg := store.NewRegistry()

			w, err := domain.NewWriter(reg, tc.input)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Nil(t, w)
				assert.Empty(t, reg.Writers(), "failed construction must not register")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantName, w.Name())
			assert.NotEqual(t, uuid.Nil, w.ID())
			assert.Equal(t, []*domain.Writer{w}, reg.Writers())
		})
	}
}

func TestNewWriterNilCatalog(t *testing.T) {
	t.Parallel()

	w, err := domain.NewWriter(nil, "Nora Ephron")

	assert.Nil(t, w)
	assert.ErrorIs(t, err, domain.ErrNilCatalog)
	assert.True(t, domain.IsValidationError(err))
}

func TestWriterSetNameAlwaysFails(t *testing.T) {
	t.Parallel()
	reg := store.NewRegistry()
	w, err := domain.NewWriter(reg, "Joan Didion")
	require.NoError(t, err)

	for _, name := range []string{"Someone Else", "Joan Didion", ""} {
		err := w.SetName(name)

		var immutable *domain.ImmutableFieldError
		require.True(t, errors.As(err, &immutable))
		assert.Equal(t, "writer", immutable.Entity)
		assert.Equal(t, "name", immutable.Field)
		assert.True(t, domain.IsImmutableFieldError(err))
		assert.False(t, domain.IsValidationError(err))
	}

	assert.Equal(t, "Joan Didion", w.Name())
}

func TestWriterAddContribution(t *testing.T) {
	t.Parallel()
	reg := store.NewRegistry()
	w, err := domain.NewWriter(reg, "Joan Didion")
	require.NoError(t, err)
	p, err := domain.NewPublication(reg, "Vogue", "Fashion")
	require.NoError(t, err)

	c, err := w.AddContribution(p, "Valid Title")
	require.NoError(t, err)

	assert.Same(t, w, c.Writer())
	assert.Same(t, p, c.Publication())
	assert.Equal(t, []*domain.Contribution{c}, w.Contributions())
	assert.Equal(t, []*domain.Contribution{c}, p.Contributions())
	assert.Equal(t, []*domain.Publication{p}, w.Publications())
	assert.Equal(t, []*domain.Contribution{c}, reg.Contributions())

	_, err = w.AddContribution(p, "Nope")
	assert.ErrorIs(t, err, domain.ErrContributionTitleLength)
	assert.Len(t, reg.Contributions(), 1)

	_, err = w.AddContribution(nil, "Valid Title")
	assert.ErrorIs(t, err, domain.ErrInvalidPublication)
	assert.Len(t, reg.Contributions(), 1)
}

func TestWriterAddContributionInvalidWriter(t *testing.T) {
	t.Parallel()
	reg := store.NewRegistry()
	p, err := domain.NewPublication(reg, "Vogue", "Fashion")
	require.NoError(t, err)

	var w *domain.Writer
	_, err = w.AddContribution(p, "Valid Title")
	assert.ErrorIs(t, err, domain.ErrInvalidWriter)

	_, err = (&domain.Writer{}).AddContribution(p, "Valid Title")
	assert.ErrorIs(t, err, domain.ErrInvalidWriter)
	assert.Empty(t, reg.Contributions())
}

func TestWriterPublicationsAreDistinct(t *testing.T) {
	t.Parallel()
	reg := store.NewRegistry()
	w, _ := domain.NewWriter(reg, "Joan Didion")
	vogue, _ := domain.NewPublication(reg, "Vogue", "Fashion")
	esquire, _ := domain.NewPublication(reg, "Esquire", "Culture")

	for _, p := range []*domain.Publication{vogue, esquire, vogue, vogue} {
		_, err := w.AddContribution(p, "Some Article")
		require.NoError(t, err)
	}

	assert.Equal(t, []*domain.Publication{vogue, esquire}, w.Publications())
	assert.Len(t, w.Contributions(), 4)
	assert.Equal(t, 3, w.ContributionCount(vogue))
	assert.Equal(t, 1, w.ContributionCount(esquire))
}

func TestWriterContributionsUseIdentity(t *testing.T) {
	t.Parallel()
	reg := store.NewRegistry()
	first, _ := domain.NewWriter(reg, "Same Name")
	second, _ := domain.NewWriter(reg, "Same Name")
	p, _ := domain.NewPublication(reg, "Vogue", "Fashion")

	c, err := first.AddContribution(p, "Only Mine")
	require.NoError(t, err)

	assert.Equal(t, []*domain.Contribution{c}, first.Contributions())
	assert.Empty(t, second.Contributions())
}

func TestWriterTopicAreas(t *testing.T) {
	t.Parallel()

	t.Run("no contributions is absence", func(t *testing.T) {
		t.Parallel()
		reg := store.NewRegistry()
		w, _ := domain.NewWriter(reg, "Nobody Yet")

		areas, ok := w.TopicAreas()

		assert.False(t, ok)
		assert.Nil(t, areas)
	})

	t.Run("distinct categories", func(t *testing.T) {
		t.Parallel()
		reg := store.NewRegistry()
		w, _ := domain.NewWriter(reg, "Joan Didion")
		vogue, _ := domain.NewPublication(reg, "Vogue", "Fashion")
		elle, _ := domain.NewPublication(reg, "Elle", "Fashion")
		wired, _ := domain.NewPublication(reg, "Wired", "Tech")

		for _, p := range []*domain.Publication{vogue, elle, wired} {
			_, err := w.AddContribution(p, "Some Article")
			require.NoError(t, err)
		}

		areas, ok := w.TopicAreas()

		assert.True(t, ok)
		assert.ElementsMatch(t, []string{"Fashion", "Tech"}, areas)
	})
}

func TestWriterString(t *testing.T) {
	t.Parallel()
	reg := store.NewRegistry()
	w, _ := domain.NewWriter(reg, "Joan Didion")

	assert.Equal(t, `Writer("Joan Didion")`, w.String())
	assert.Equal(t, "Writer(<nil>)", (*domain.Writer)(nil).String())
}

// TestNewWriterProperty checks that construction succeeds exactly when the
// name is non-empty.
func TestNewWriterProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		reg := store.NewRegistry()
		name := rapid.String().Draw(rt, "name")

		w, err := domain.NewWriter(reg, name)

		if name == "" {
			if !errors.Is(err, domain.ErrWriterNameEmpty) {
				rt.Fatalf("expected ErrWriterNameEmpty for empty name, got %v", err)
			}
			if len(reg.Writers()) != 0 {
				rt.Fatalf("failed construction registered a writer")
			}
			return
		}

		if err != nil {
			rt.Fatalf("unexpected error for %q: %v", name, err)
		}
		if w.Name() != name {
			rt.Fatalf("name = %q, want %q", w.Name(), name)
		}
		if err := w.SetName(name + "x"); !errors.Is(err, domain.ErrImmutableField) {
			rt.Fatalf("expected ErrImmutableField, got %v", err)
		}
	})
}
