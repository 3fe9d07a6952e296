// Package sample generates synthetic input workbooks for demos and manual
// testing.
package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/bxcodec/faker/v4"

	"github.com/wutcharinth/election-tally/geo"
	"github.com/wutcharinth/election-tally/workbook"
)

// contenders are the parties fielded in every generated district.
var contenders = []string{
	"ก้าวไกล",
	"เพื่อไทย",
	"ภูมิใจไทย",
	"พลังประชารัฐ",
	"รวมไทยสร้างชาติ",
	"ประชาธิปัตย์",
	"ชาติไทยพัฒนา",
	"เสรีรวมไทย",
}

// Rows generates ballot rows for the first provinces entries of the real
// province table, districts districts each, and one candidate per contending
// party with random vote counts.
func Rows(provinces, districts int) []workbook.BallotRow {
	names := geo.Provinces()
	if provinces > len(names) {
		provinces = len(names)
	}

	rows := make([]workbook.BallotRow, 0, provinces*districts*len(contenders))
	for _, province := range names[:provinces] {
		for d := 1; d <= districts; d++ {
			for _, partyName := range contenders {
				rows = append(rows, workbook.BallotRow{
					Province:      province,
					Party:         partyName,
					Votes:         500 + rand.IntN(90000),
					CandidateName: faker.Name(),
					DistrictID:    d,
				})
			}
		}
	}
	return rows
}

// GenerateFile writes a synthetic workbook in the source input format.
func GenerateFile(path string, provinces, districts int) error {
	rows := Rows(provinces, districts)
	title := fmt.Sprintf("ผลการเลือกตั้ง (ตัวอย่าง %d จังหวัด)", provinces)
	if err := workbook.WriteFile(rows, title, path); err != nil {
		return fmt.Errorf("generate sample: %w", err)
	}
	return nil
}
