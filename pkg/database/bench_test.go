package database

import (
	"strconv"
	"testing"
)

func BenchmarkExecuteInsert(b *testing.B) {
	db := NewDatabase()
	lines := make([]string, 256)
	for i := range lines {
		lines[i] = "insert " + strconv.Itoa(i) + " user" + strconv.Itoa(i) + " user" + strconv.Itoa(i) + "@example.com"
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := db.Execute(lines[i%len(lines)]); res.Err != nil {
			b.Fatal(res.Err)
		}
	}
}

func BenchmarkExecuteSelect(b *testing.B) {
	db := NewDatabase()
	for i := range 1000 {
		db.Execute("insert " + strconv.Itoa(i%256) + " user user@example.com")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := db.Execute("select"); len(res.Rows) != 1000 {
			b.Fatalf("got %d rows", len(res.Rows))
		}
	}
}

func BenchmarkExecuteRejected(b *testing.B) {
	db := NewDatabase()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		db.Execute("insert abc x y")
	}
}
