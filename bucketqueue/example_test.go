package bucketqueue_test

import (
	"fmt"

	"github.com/katalvlaran/ift/bucketqueue"
)

// ExampleQueue pops nodes by cost; equal costs leave in insertion order.
func ExampleQueue() {
	q, err := bucketqueue.New(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = q.Insert(0, 3)
	_ = q.Insert(1, 1)
	_ = q.Insert(2, 1)
	_ = q.Insert(3, 2)
	_ = q.DecreaseKey(0, 0)

	for !q.Empty() {
		n, _ := q.RemoveMin()
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output: 0 1 2 3
}
