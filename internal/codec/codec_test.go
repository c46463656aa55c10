package codec

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/riordanpawley/todo/internal/domain"
	"github.com/riordanpawley/todo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tasks := []domain.Task{
		{ID: 2, Description: "Call dentist", Status: domain.StatusTodo, Priority: domain.PriorityHigh, DueDate: "2024-04-20"},
		{ID: 1, Description: `Buy "bio" milk; 2L`, Status: domain.StatusInProgress, Priority: domain.PriorityMedium, DueDate: "2024-05-01"},
		{ID: 10, Description: "Archive", Status: domain.StatusDone, Priority: domain.PriorityLow, DueDate: ""},
	}

	got, err := EncodeString(tasks)
	require.NoError(t, err)

	want := `2;"Call dentist";A_FAIRE;HAUTE;2024-04-20
1;"Buy ""bio"" milk; 2L";EN_COURS;MOYENNE;2024-05-01
10;"Archive";TERMINEE;BASSE;
`
	assert.Equal(t, want, got)
}

func TestEncode_Deterministic(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Description: "a;b", Status: domain.StatusTodo, Priority: domain.PriorityLow, DueDate: "2024-01-01"},
		{ID: 2, Description: `"q"`, Status: domain.StatusDone, Priority: domain.PriorityHigh, DueDate: "2024-01-02"},
	}

	first, err := EncodeString(tasks)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := EncodeString(tasks)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEncode_Empty(t *testing.T) {
	got, err := EncodeString(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestEncode_RejectsUnrepresentableTasks(t *testing.T) {
	valid := domain.Task{ID: 1, Description: "ok", Status: domain.StatusTodo, Priority: domain.PriorityLow}

	tests := []struct {
		name   string
		mutate func(*domain.Task)
		field  string
	}{
		{"zero id", func(t *domain.Task) { t.ID = 0 }, "id"},
		{"unknown status", func(t *domain.Task) { t.Status = 0 }, "status"},
		{"unknown priority", func(t *domain.Task) { t.Priority = 9 }, "priority"},
		{"multi-line description", func(t *domain.Task) { t.Description = "a\nb" }, "description"},
		{"delimiter in due date", func(t *domain.Task) { t.DueDate = "2024;01" }, "due date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)

			var b strings.Builder
			err := Encode(&b, []domain.Task{valid, task})

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			var inputErr *domain.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
			assert.Empty(t, b.String(), "nothing is written when any task is invalid")
		})
	}
}

func TestDecode(t *testing.T) {
	input := `2;"Call dentist";A_FAIRE;HAUTE;2024-04-20
1;"Buy ""bio"" milk; 2L";EN_COURS;MOYENNE;2024-05-01
`
	result, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []domain.Task{
		{ID: 2, Description: "Call dentist", Status: domain.StatusTodo, Priority: domain.PriorityHigh, DueDate: "2024-04-20"},
		{ID: 1, Description: `Buy "bio" milk; 2L`, Status: domain.StatusInProgress, Priority: domain.PriorityMedium, DueDate: "2024-05-01"},
	}, result.Tasks)
	assert.Equal(t, 3, result.NextID)
	assert.Empty(t, result.Skipped)
}

func TestDecode_Empty(t *testing.T) {
	result := DecodeString("")

	assert.NotNil(t, result.Tasks)
	assert.Empty(t, result.Tasks)
	assert.Equal(t, 1, result.NextID)
}

func TestDecode_SkipsBlankLinesAndHandlesCRLF(t *testing.T) {
	input := "\r\n1;\"a\";A_FAIRE;BASSE;2024-01-01\r\n   \n\n3;\"c\";TERMINEE;HAUTE;2024-01-03"

	result := DecodeString(input)

	require.Len(t, result.Tasks, 2)
	assert.Equal(t, "2024-01-01", result.Tasks[0].DueDate)
	assert.Equal(t, 3, result.Tasks[1].ID)
	assert.Equal(t, "2024-01-03", result.Tasks[1].DueDate, "last line without newline is decoded")
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 4, result.NextID)
}

func TestDecode_MalformedLines(t *testing.T) {
	good := `1;"ok";A_FAIRE;BASSE;2024-01-01`

	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"too few fields", `2;"x";A_FAIRE;BASSE`, nil},
		{"too many fields", `2;"x";A_FAIRE;BASSE;2024-01-01;extra`, nil},
		{"non-integer id", `abc;"x";A_FAIRE;BASSE;2024-01-01`, nil},
		{"zero id", `0;"x";A_FAIRE;BASSE;2024-01-01`, nil},
		{"negative id", `-4;"x";A_FAIRE;BASSE;2024-01-01`, nil},
		{"unknown status", `2;"x";TODO;BASSE;2024-01-01`, domain.ErrUnknownToken},
		{"unknown priority", `2;"x";A_FAIRE;URGENT;2024-01-01`, domain.ErrUnknownToken},
		{"unterminated quote", `2;"x;A_FAIRE;BASSE;2024-01-01`, errUnterminatedQuote},
		{"duplicate id", `1;"again";A_FAIRE;BASSE;2024-01-01`, nil},
		{"id with no successor", strconv.Itoa(math.MaxInt) + `;"x";A_FAIRE;BASSE;2024-01-01`, nil},
		{"quoted due date with delimiter", `2;"x";A_FAIRE;HAUTE;"2024;05"`, nil},
		{"quote inside due date", `2;"x";A_FAIRE;HAUTE;20"24`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Decode(strings.NewReader(good + "\n" + tt.line + "\n"))
			require.NoError(t, err, "malformed lines are never fatal")

			require.Len(t, result.Tasks, 1)
			assert.Equal(t, "ok", result.Tasks[0].Description)
			assert.Equal(t, 2, result.NextID, "skipped lines do not advance the counter")

			require.Len(t, result.Skipped, 1)
			skipped := result.Skipped[0]
			assert.Equal(t, 2, skipped.Line)
			assert.Equal(t, tt.line, skipped.Text)
			assert.ErrorIs(t, skipped, domain.ErrMalformedRecord)
			if tt.wantErr != nil {
				assert.ErrorIs(t, skipped, tt.wantErr)
			}
		})
	}
}

func TestDecode_OutputAlwaysEncodes(t *testing.T) {
	input := `1;"ok";A_FAIRE;BASSE;2024-05-01
2;"x";A_FAIRE;HAUTE;"2024;05"
3;"y";A_FAIRE;HAUTE;20"24
4;"quoted date";EN_COURS;MOYENNE;"2024-06-01"
`
	result := DecodeString(input)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 2, result.Skipped[0].Line)
	assert.Equal(t, 3, result.Skipped[1].Line)

	out, err := EncodeString(result.Tasks)
	require.NoError(t, err)
	assert.Equal(t, `1;"ok";A_FAIRE;BASSE;2024-05-01
4;"quoted date";EN_COURS;MOYENNE;2024-06-01
`, out)
}

func TestDecode_NextIDFollowsHighestID(t *testing.T) {
	input := `5;"a";A_FAIRE;BASSE;
2;"b";A_FAIRE;BASSE;
9;"c";A_FAIRE;BASSE;
`
	assert.Equal(t, 10, DecodeString(input).NextID)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDecode_ReadFailure(t *testing.T) {
	result, err := Decode(failingReader{})

	assert.Nil(t, result)
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestRoundTrip(t *testing.T) {
	s := store.New()
	descriptions := []string{
		"Buy milk",
		`Quote "inside"`,
		"semi;colon;s",
		`";"`,
		"  padded  ",
		"accents éàü",
	}
	for i, d := range descriptions {
		priority := domain.Priorities()[i%3]
		_, err := s.Add(d, priority, "2024-0"+string(rune('1'+i))+"-15")
		require.NoError(t, err)
	}
	s.SetStatus(2, domain.StatusInProgress)
	s.SetStatus(4, domain.StatusDone)
	s.Remove(3)
	s.SortByPriorityDescending()

	text, err := EncodeString(s.List())
	require.NoError(t, err)

	result := DecodeString(text)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, s.List(), result.Tasks)

	reloaded := store.New()
	reloaded.Replace(result.Tasks, result.NextID)
	assert.Equal(t, s.List(), reloaded.List())
	assert.Equal(t, 7, reloaded.NextID())
}

func TestScenario_SortEncodeDecode(t *testing.T) {
	s := store.New()
	id1, err := s.Add("Buy milk", domain.PriorityMedium, "2024-05-01")
	require.NoError(t, err)
	id2, err := s.Add("Call dentist", domain.PriorityHigh, "2024-04-20")
	require.NoError(t, err)
	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, id2)

	s.SortByPriorityDescending()
	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, 1, list[1].ID)

	text, err := EncodeString(list)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "2;"))
	assert.Contains(t, lines[0], ";HAUTE;")
	assert.True(t, strings.HasPrefix(lines[1], "1;"))
	assert.Contains(t, lines[1], ";MOYENNE;")

	result := DecodeString(text)
	assert.Equal(t, list, result.Tasks)
	assert.Equal(t, 3, result.NextID)
}
