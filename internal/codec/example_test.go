package codec_test

import (
	"fmt"
	"os"

	"github.com/riordanpawley/todo/internal/codec"
	"github.com/riordanpawley/todo/internal/domain"
)

func ExampleEncode() {
	tasks := []domain.Task{
		{ID: 2, Description: "Call dentist", Status: domain.StatusTodo, Priority: domain.PriorityHigh, DueDate: "2024-04-20"},
		{ID: 1, Description: `Buy "bio" milk; 2L`, Status: domain.StatusDone, Priority: domain.PriorityMedium, DueDate: "2024-05-01"},
	}

	if err := codec.Encode(os.Stdout, tasks); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 2;"Call dentist";A_FAIRE;HAUTE;2024-04-20
	// 1;"Buy ""bio"" milk; 2L";TERMINEE;MOYENNE;2024-05-01
}

func ExampleDecodeString() {
	result := codec.DecodeString(`1;"Buy milk";A_FAIRE;MOYENNE;2024-05-01
2;"Broken";SOMEDAY;HAUTE;2024-04-20
3;"Call dentist";EN_COURS;HAUTE;2024-04-20
`)

	for _, t := range result.Tasks {
		fmt.Printf("#%d %s [%s, %s] due %s\n", t.ID, t.Description, t.Status, t.Priority, t.DueDate)
	}
	for _, skipped := range result.Skipped {
		fmt.Println("skipped line", skipped.Line)
	}
	fmt.Println("next id:", result.NextID)
	// Output:
	// #1 Buy milk [todo, medium] due 2024-05-01
	// #3 Call dentist [in progress, high] due 2024-04-20
	// skipped line 2
	// next id: 4
}
