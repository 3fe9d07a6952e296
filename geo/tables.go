package geo

import "sort"

// DefaultRegions returns the production region table covering all 77
// provinces.
func DefaultRegions() map[string]Region {
	return map[string]Region{
		// North
		"เชียงราย": North, "เชียงใหม่": North, "น่าน": North, "พะเยา": North,
		"แพร่": North, "แม่ฮ่องสอน": North, "ลำปาง": North, "ลำพูน": North,
		"อุตรดิตถ์": North, "กำแพงเพชร": North, "นครสวรรค์": North,
		"พิจิตร": North, "พิษณุโลก": North, "เพชรบูรณ์": North, "สุโขทัย": North,

		// Northeast
		"กาฬสินธุ์": Northeast, "ขอนแก่น": Northeast, "ชัยภูมิ": Northeast,
		"นครพนม": Northeast, "นครราชสีมา": Northeast, "บึงกาฬ": Northeast,
		"บุรีรัมย์": Northeast, "มหาสารคาม": Northeast, "มุกดาหาร": Northeast,
		"ยโสธร": Northeast, "ร้อยเอ็ด": Northeast, "เลย": Northeast,
		"ศรีสะเกษ": Northeast, "สกลนคร": Northeast, "สุรินทร์": Northeast,
		"หนองคาย": Northeast, "หนองบัวลำภู": Northeast, "อำนาจเจริญ": Northeast,
		"อุดรธานี": Northeast, "อุบลราชธานี": Northeast,

		// Central
		"ชัยนาท": Central, "นครนายก": Central, "นครปฐม": Central,
		"นนทบุรี": Central, "ปทุมธานี": Central, "พระนครศรีอยุธยา": Central,
		"ลพบุรี": Central, "สมุทรปราการ": Central, "สมุทรสงคราม": Central,
		"สมุทรสาคร": Central, "สระบุรี": Central, "สิงห์บุรี": Central,
		"สุพรรณบุรี": Central, "อ่างทอง": Central, "อุทัยธานี": Central,

		// East
		"จันทบุรี": East, "ฉะเชิงเทรา": East, "ชลบุรี": East, "ตราด": East,
		"ปราจีนบุรี": East, "ระยอง": East, "สระแก้ว": East,

		// West
		"กาญจนบุรี": West, "ตาก": West, "ประจวบคีรีขันธ์": West,
		"เพชรบุรี": West, "ราชบุรี": West,

		// South
		"กระบี่": South, "ชุมพร": South, "ตรัง": South, "นครศรีธรรมราช": South,
		"นราธิวาส": South, "ปัตตานี": South, "พังงา": South, "พัทลุง": South,
		"ภูเก็ต": South, "ยะลา": South, "ระนอง": South, "สงขลา": South,
		"สตูล": South, "สุราษฎร์ธานี": South,

		"กรุงเทพมหานคร": Bangkok,
	}
}

// DefaultGrids returns the production tile-map table. Row 0 is the top of
// the map; tiles roughly follow the geographic layout of the country.
func DefaultGrids() map[string]Grid {
	return map[string]Grid{
		"แม่ฮ่องสอน": {0, 1}, "เชียงใหม่": {0, 2}, "เชียงราย": {0, 3}, "พะเยา": {0, 4},
		"ลำพูน": {1, 2}, "ลำปาง": {1, 3}, "แพร่": {1, 4}, "น่าน": {1, 5},
		"สุโขทัย": {2, 2}, "อุตรดิตถ์": {2, 3}, "พิษณุโลก": {2, 4}, "เพชรบูรณ์": {2, 5},
		"เลย": {2, 6}, "หนองคาย": {2, 7}, "บึงกาฬ": {2, 8},
		"ตาก": {3, 1}, "กำแพงเพชร": {3, 2}, "พิจิตร": {3, 3}, "นครสวรรค์": {3, 4},
		"หนองบัวลำภู": {3, 6}, "อุดรธานี": {3, 7}, "สกลนคร": {3, 8}, "นครพนม": {3, 9},
		"อุทัยธานี": {4, 2}, "ชัยนาท": {4, 3}, "สิงห์บุรี": {4, 4}, "ลพบุรี": {4, 5},
		"ชัยภูมิ": {4, 6}, "ขอนแก่น": {4, 7}, "กาฬสินธุ์": {4, 8}, "มุกดาหาร": {4, 9},
		"สุพรรณบุรี": {5, 2}, "อ่างทอง": {5, 3}, "พระนครศรีอยุธยา": {5, 4}, "สระบุรี": {5, 5},
		"นครราชสีมา": {5, 6}, "มหาสารคาม": {5, 7}, "ร้อยเอ็ด": {5, 8}, "ยโสธร": {5, 9},
		"อำนาจเจริญ": {5, 10},
		"กาญจนบุรี": {6, 1}, "นครปฐม": {6, 2}, "นนทบุรี": {6, 3}, "ปทุมธานี": {6, 4},
		"นครนายก": {6, 5}, "บุรีรัมย์": {6, 6}, "สุรินทร์": {6, 7}, "ศรีสะเกษ": {6, 8},
		"อุบลราชธานี": {6, 9},
		"ราชบุรี": {7, 1}, "สมุทรสาคร": {7, 2}, "กรุงเทพมหานคร": {7, 3},
		"สมุทรปราการ": {7, 4}, "ฉะเชิงเทรา": {7, 5}, "ปราจีนบุรี": {7, 6}, "สระแก้ว": {7, 7},
		"เพชรบุรี": {8, 1}, "สมุทรสงคราม": {8, 2}, "ชลบุรี": {8, 5},
		"ประจวบคีรีขันธ์": {9, 1}, "ระยอง": {9, 5}, "จันทบุรี": {9, 6},
		"ตราด": {10, 6},
		"ระนอง": {10, 0}, "ชุมพร": {10, 1},
		"สุราษฎร์ธานี": {11, 1}, "นครศรีธรรมราช": {11, 2},
		"พังงา": {12, 0}, "กระบี่": {12, 1},
		"ภูเก็ต": {13, 0}, "ตรัง": {13, 1}, "พัทลุง": {13, 2},
		"สตูล": {14, 1}, "สงขลา": {14, 2},
		"ปัตตานี": {15, 2}, "นราธิวาส": {15, 3},
		"ยะลา": {16, 2},
	}
}

// Provinces returns every province in the region table, sorted, for callers
// that need a deterministic ordering.
func Provinces() []string {
	regions := DefaultRegions()
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
