package party

// DefaultTable returns the production metadata table, keyed by canonical
// Thai party name as it appears in the source workbook.
func DefaultTable() map[string]Metadata {
	return map[string]Metadata{
		"ก้าวไกล": {
			Color: "#F47932", NameEn: "Move Forward", NameTh: "ก้าวไกล",
			Leader:   "พิธา ลิ้มเจริญรัตน์",
			Slogan:   "Vote Move Forward, Thailand will never be the same",
			SloganTh: "กาก้าวไกล ประเทศไทยไม่เหมือนเดิม",
			Logo:     "/logos/moveforward.png",
		},
		"เพื่อไทย": {
			Color: "#E3000F", NameEn: "Pheu Thai", NameTh: "เพื่อไทย",
			Leader:   "แพทองธาร ชินวัตร",
			Slogan:   "Think big, act smart, for all Thais",
			SloganTh: "คิดใหญ่ ทำเป็น เพื่อไทยทุกคน",
			Logo:     "/logos/pheuthai.png",
		},
		"ภูมิใจไทย": {
			Color: "#2A3C90", NameEn: "Bhumjaithai", NameTh: "ภูมิใจไทย",
			Leader:   "อนุทิน ชาญวีรกูล",
			Slogan:   "Said and done",
			SloganTh: "พูดแล้วทำ",
			Logo:     "/logos/bhumjaithai.png",
		},
		"พลังประชารัฐ": {
			Color: "#1E5AA8", NameEn: "Palang Pracharath", NameTh: "พลังประชารัฐ",
			Leader:   "ประวิตร วงษ์สุวรรณ",
			Slogan:   "Beyond conflict",
			SloganTh: "ก้าวข้ามความขัดแย้ง",
			Logo:     "/logos/pprp.png",
		},
		"รวมไทยสร้างชาติ": {
			Color: "#10277C", NameEn: "United Thai Nation", NameTh: "รวมไทยสร้างชาติ",
			Leader:   "พีระพันธุ์ สาลีรัฐวิภาค",
			Slogan:   "Done, doing, will do",
			SloganTh: "ทำแล้ว ทำอยู่ ทำต่อ",
			Logo:     "/logos/utn.png",
		},
		"ประชาธิปัตย์": {
			Color: "#00A1E4", NameEn: "Democrat", NameTh: "ประชาธิปัตย์",
			Leader:   "จุรินทร์ ลักษณวิศิษฏ์",
			Slogan:   "Build money, build people, build the nation",
			SloganTh: "สร้างเงิน สร้างคน สร้างชาติ",
			Logo:     "/logos/democrat.png",
		},
		"ชาติไทยพัฒนา": {
			Color: "#EC668D", NameEn: "Chartthaipattana", NameTh: "ชาติไทยพัฒนา",
			Leader:   "วราวุธ ศิลปอาชา",
			Slogan:   "Pragmatic and fast",
			SloganTh: "แก้ได้ ทำไว",
			Logo:     "/logos/ctp.png",
		},
		"ประชาชาติ": {
			Color: "#006B3C", NameEn: "Prachachart", NameTh: "ประชาชาติ",
			Leader:   "วันมูหะมัดนอร์ มะทา",
			Slogan:   "Diversity in unity",
			SloganTh: "พหุวัฒนธรรม นำสันติสุข",
			Logo:     "/logos/prachachart.png",
		},
		"ไทยสร้างไทย": {
			Color: "#2B3990", NameEn: "Thai Sang Thai", NameTh: "ไทยสร้างไทย",
			Leader:   "สุดารัตน์ เกยุราพันธุ์",
			Slogan:   "Built by Thais, for Thais",
			SloganTh: "ไทยสร้างไทย เพื่อคนตัวเล็ก",
			Logo:     "/logos/tst.png",
		},
		"ชาติพัฒนากล้า": {
			Color: "#F7941D", NameEn: "Chart Pattana Kla", NameTh: "ชาติพัฒนากล้า",
			Leader:   "กรณ์ จาติกวณิช",
			Slogan:   "Economy first",
			SloganTh: "เศรษฐกิจดี มีทางออก",
			Logo:     "/logos/cpk.png",
		},
		"เสรีรวมไทย": {
			Color: "#FDB913", NameEn: "Thai Liberal", NameTh: "เสรีรวมไทย",
			Leader:   "เสรีพิศุทธ์ เตมียเวส",
			Slogan:   "Straight talk, honest work",
			SloganTh: "ตรงไปตรงมา ซื่อสัตย์สุจริต",
			Logo:     "/logos/seri.png",
		},
		"เพื่อไทรวมพลัง": {
			Color: "#8C2332", NameEn: "Phue Thai Ruam Palang", NameTh: "เพื่อไทรวมพลัง",
			Leader: "วสวรรธน์ พวงพรศรี", Slogan: "-", SloganTh: "-",
			Logo: "/logos/ptrp.png",
		},
		"ใหม่": {
			Color: "#4B9CD3", NameEn: "Mai", NameTh: "ใหม่",
			Leader: "กฤดิทธิ์ อัจฉริยะประสิทธิ์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/mai.png",
		},
		"ท้องที่ไทย": {
			Color: "#7A5C2E", NameEn: "Thongthi Thai", NameTh: "ท้องที่ไทย",
			Leader: "บุญญาพร นาตะธนภัทร", Slogan: "-", SloganTh: "-",
			Logo: "/logos/thongthi.png",
		},
		"พลังสังคมใหม่": {
			Color: "#0E7C61", NameEn: "New Social Power", NameTh: "พลังสังคมใหม่",
			Leader: "เชาวฤทธิ์ ขจรพงศ์กีรติ", Slogan: "-", SloganTh: "-",
			Logo: "/logos/nsp.png",
		},
		"ครูไทยเพื่อประชาชน": {
			Color: "#9C27B0", NameEn: "Thai Teachers for People", NameTh: "ครูไทยเพื่อประชาชน",
			Leader: "ปรีดา บุญเพลิง", Slogan: "-", SloganTh: "-",
			Logo: "/logos/kru.png",
		},
		"ประชาธิปไตยใหม่": {
			Color: "#00695C", NameEn: "New Democracy", NameTh: "ประชาธิปไตยใหม่",
			Leader: "สุรทิน พิจารณ์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/newdem.png",
		},
		"ไทยภักดี": {
			Color: "#123C78", NameEn: "Thai Pakdee", NameTh: "ไทยภักดี",
			Leader: "วรงค์ เดชกิจวิกรม", Slogan: "-", SloganTh: "-",
			Logo: "/logos/pakdee.png",
		},
		"สร้างอนาคตไทย": {
			Color: "#00539C", NameEn: "Sang Anakot Thai", NameTh: "สร้างอนาคตไทย",
			Leader: "สมคิด จาตุศรีพิทักษ์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/sat.png",
		},
		"เศรษฐกิจไทย": {
			Color: "#37474F", NameEn: "Setthakij Thai", NameTh: "เศรษฐกิจไทย",
			Leader: "ธรรมนัส พรหมเผ่า", Slogan: "-", SloganTh: "-",
			Logo: "/logos/setthakij.png",
		},
		"รวมพลัง": {
			Color: "#F0A030", NameEn: "Ruam Palang", NameTh: "รวมพลัง",
			Leader: "เอนก เหล่าธรรมทัศน์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/ruampalang.png",
		},
		"พลังธรรมใหม่": {
			Color: "#1A936F", NameEn: "New Palangdharma", NameTh: "พลังธรรมใหม่",
			Leader: "ระวี มาศฉมาดล", Slogan: "-", SloganTh: "-",
			Logo: "/logos/npd.png",
		},
		"เพื่อชาติ": {
			Color: "#B71C1C", NameEn: "Pheu Chart", NameTh: "เพื่อชาติ",
			Leader: "ปวิศรัฐฐ์ ติยะไพรัช", Slogan: "-", SloganTh: "-",
			Logo: "/logos/pheuchart.png",
		},
		"ไทยศรีวิไลย์": {
			Color: "#5D4037", NameEn: "Thai Sri Wilai", NameTh: "ไทยศรีวิไลย์",
			Leader: "มงคลกิตติ์ สุขสินธารานนท์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/sriwilai.png",
		},
		"พลังท้องถิ่นไท": {
			Color: "#00838F", NameEn: "Thai Local Power", NameTh: "พลังท้องถิ่นไท",
			Leader: "ชัชวาลล์ คงอุดม", Slogan: "-", SloganTh: "-",
			Logo: "/logos/localpower.png",
		},
		"รักษ์ผืนป่าประเทศไทย": {
			Color: "#2E7D32", NameEn: "Thai Forest Conservation", NameTh: "รักษ์ผืนป่าประเทศไทย",
			Leader: "ดำรงค์ พิเดช", Slogan: "-", SloganTh: "-",
			Logo: "/logos/forest.png",
		},
		"ประชาภิวัฒน์": {
			Color: "#6A1B9A", NameEn: "Prachapiwat", NameTh: "ประชาภิวัฒน์",
			Leader: "สมเกียรติ ศรลัมพ์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/prachapiwat.png",
		},
		"พลังปวงชนไทย": {
			Color: "#AD1457", NameEn: "Thai People Power", NameTh: "พลังปวงชนไทย",
			Leader: "นิคม บุญวิเศษ", Slogan: "-", SloganTh: "-",
			Logo: "/logos/puangchon.png",
		},
		"ประชากรไทย": {
			Color: "#33691E", NameEn: "Prachakorn Thai", NameTh: "ประชากรไทย",
			Leader: "คณิศร สมมะลวน", Slogan: "-", SloganTh: "-",
			Logo: "/logos/prachakorn.png",
		},
		"แผ่นดินธรรม": {
			Color: "#FF8F00", NameEn: "Pandin Dharma", NameTh: "แผ่นดินธรรม",
			Leader: "กรณ์ มีดี", Slogan: "-", SloganTh: "-",
			Logo: "/logos/pandin.png",
		},
		"ไทรักธรรม": {
			Color: "#4E342E", NameEn: "Thai Rak Tham", NameTh: "ไทรักธรรม",
			Leader: "ไพบูลย์ นิติตะวัน", Slogan: "-", SloganTh: "-",
			Logo: "/logos/raktham.png",
		},
		"พลเมืองไทย": {
			Color: "#455A64", NameEn: "Thai Citizens", NameTh: "พลเมืองไทย",
			Leader: "สัมพันธ์ เลิศนุวัฒน์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/polmuang.png",
		},
		"ถิ่นกาขาวชาววิไล": {
			Color: "#827717", NameEn: "Thin Kakhao Chaovilai", NameTh: "ถิ่นกาขาวชาววิไล",
			Leader: "จารุวรรณ โชติเลอศักดิ์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/thinkakhao.png",
		},
		"แรงงานสร้างชาติ": {
			Color: "#C62828", NameEn: "Labour Builds the Nation", NameTh: "แรงงานสร้างชาติ",
			Leader: "มนัส โกศล", Slogan: "-", SloganTh: "-",
			Logo: "/logos/raengngan.png",
		},
		"เป็นธรรม": {
			Color: "#283593", NameEn: "Fair", NameTh: "เป็นธรรม",
			Leader: "ปิติพงศ์ เต็มเจริญ", Slogan: "-", SloganTh: "-",
			Logo: "/logos/pentham.png",
		},
		"ภราดรภาพ": {
			Color: "#00796B", NameEn: "Pharadornphap", NameTh: "ภราดรภาพ",
			Leader: "วิชิต ดิษฐประสพ", Slogan: "-", SloganTh: "-",
			Logo: "/logos/pharadorn.png",
		},
		"มิติใหม่": {
			Color: "#512DA8", NameEn: "Miti Mai", NameTh: "มิติใหม่",
			Leader: "ปรีชา ไข่แก้ว", Slogan: "-", SloganTh: "-",
			Logo: "/logos/mitimai.png",
		},
		"แนวทางใหม่": {
			Color: "#0277BD", NameEn: "Naew Thang Mai", NameTh: "แนวทางใหม่",
			Leader: "วิบูลย์ แสงกาญจนวนิช", Slogan: "-", SloganTh: "-",
			Logo: "/logos/naewthang.png",
		},
		"ช่วยชาติ": {
			Color: "#BF360C", NameEn: "Chuay Chart", NameTh: "ช่วยชาติ",
			Leader: "ปรีชาพล พงษ์พานิช", Slogan: "-", SloganTh: "-",
			Logo: "/logos/chuaychart.png",
		},
		"เสมอภาค": {
			Color: "#7B1FA2", NameEn: "Samerphap", NameTh: "เสมอภาค",
			Leader: "รฎาวัญ วงศ์ศรีวงศ์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/samerphap.png",
		},
		"คลองไทย": {
			Color: "#01579B", NameEn: "Khlong Thai", NameTh: "คลองไทย",
			Leader: "สายัณห์ อินทรภักดิ์", Slogan: "-", SloganTh: "-",
			Logo: "/logos/khlongthai.png",
		},
		"กรีน": {
			Color: "#43A047", NameEn: "Green", NameTh: "กรีน",
			Leader: "พงศา ชูแนม", Slogan: "-", SloganTh: "-",
			Logo: "/logos/green.png",
		},
	}
}
