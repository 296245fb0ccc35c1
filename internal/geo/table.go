package geo

// builtin is the district to ward table of Ho Chi Minh City, districts in display order.
var builtin = []District{
	{Name: "Quận 1", Wards: []string{
		"Phường Tân Định", "Phường Đa Kao", "Phường Bến Nghé", "Phường Bến Thành",
		"Phường Nguyễn Thái Bình", "Phường Phạm Ngũ Lão", "Phường Cầu Ông Lãnh", "Phường Cô Giang",
		"Phường Nguyễn Cư Trinh", "Phường Cầu Kho",
	}},
	{Name: "Quận 2", Wards: []string{
		"Phường Thảo Điền", "Phường An Phú", "Phường Bình An", "Phường Bình Trưng Đông",
		"Phường Bình Trưng Tây", "Phường Bình Khánh", "Phường An Khánh", "Phường Cát Lái",
		"Phường Thạnh Mỹ Lợi", "Phường An Lợi Đông", "Phường Thủ Thiêm",
	}},
	{Name: "Quận 3", Wards: []string{
		"Phường 08", "Phường 07", "Phường 14", "Phường 12", "Phường 11", "Phường 13", "Phường 06",
		"Phường 09", "Phường 10", "Phường 04", "Phường 05", "Phường 03", "Phường 02", "Phường 01",
	}},
	{Name: "Quận 4", Wards: []string{
		"Phường 12", "Phường 13", "Phường 09", "Phường 06", "Phường 08", "Phường 10", "Phường 05",
		"Phường 18", "Phường 14", "Phường 04", "Phường 03", "Phường 16", "Phường 02", "Phường 15",
		"Phường 01",
	}},
	{Name: "Quận 5", Wards: []string{
		"Phường 04", "Phường 09", "Phường 03", "Phường 12", "Phường 02", "Phường 08", "Phường 15",
		"Phường 07", "Phường 01", "Phường 11", "Phường 14", "Phường 05", "Phường 06", "Phường 10",
		"Phường 13",
	}},
	{Name: "Quận 6", Wards: []string{
		"Phường 14", "Phường 13", "Phường 09", "Phường 06", "Phường 12", "Phường 05", "Phường 11",
		"Phường 02", "Phường 01", "Phường 04", "Phường 08", "Phường 03", "Phường 07", "Phường 10",
	}},
	{Name: "Quận 7", Wards: []string{
		"Phường Tân Thuận Đông", "Phường Tân Thuận Tây", "Phường Tân Kiểng", "Phường Tân Hưng",
		"Phường Bình Thuận", "Phường Tân Quy", "Phường Phú Thuận", "Phường Tân Phú", "Phường Tân Phong",
		"Phường Phú Mỹ",
	}},
	{Name: "Quận 8", Wards: []string{
		"Phường 08", "Phường 02", "Phường 01", "Phường 03", "Phường 11", "Phường 09", "Phường 10",
		"Phường 04", "Phường 13", "Phường 12", "Phường 05", "Phường 14", "Phường 06", "Phường 15",
		"Phường 16", "Phường 07",
	}},
	{Name: "Quận 9", Wards: []string{
		"Phường Long Bình", "Phường Long Thạnh Mỹ", "Phường Tân Phú", "Phường Hiệp Phú",
		"Phường Tăng Nhơn Phú A", "Phường Tăng Nhơn Phú B", "Phường Phước Long B", "Phường Phước Long A",
		"Phường Trường Thạnh", "Phường Long Phước", "Phường Long Trường", "Phường Phước Bình",
		"Phường Phú Hữu",
	}},
	{Name: "Quận 10", Wards: []string{
		"Phường 15", "Phường 13", "Phường 14", "Phường 12", "Phường 11", "Phường 10", "Phường 09",
		"Phường 01", "Phường 08", "Phường 02", "Phường 04", "Phường 07", "Phường 05", "Phường 06",
		"Phường 03",
	}},
	{Name: "Quận 11", Wards: []string{
		"Phường 15", "Phường 05", "Phường 14", "Phường 11", "Phường 03", "Phường 10", "Phường 13",
		"Phường 08", "Phường 09", "Phường 12", "Phường 07", "Phường 06", "Phường 04", "Phường 01",
		"Phường 02", "Phường 16",
	}},
	{Name: "Quận 12", Wards: []string{
		"Phường Thạnh Xuân", "Phường Thạnh Lộc", "Phường Hiệp Thành", "Phường Thới An",
		"Phường Tân Chánh Hiệp", "Phường An Phú Đông", "Phường Tân Thới Hiệp", "Phường Trung Mỹ Tây",
		"Phường Tân Hưng Thuận", "Phường Đông Hưng Thuận", "Phường Tân Thới Nhất",
	}},
	{Name: "Quận Bình Thạnh", Wards: []string{
		"Phường 13", "Phường 11", "Phường 27", "Phường 26", "Phường 12", "Phường 25", "Phường 05",
		"Phường 07", "Phường 24", "Phường 06", "Phường 14", "Phường 15", "Phường 02", "Phường 01",
		"Phường 03", "Phường 17", "Phường 21", "Phường 22", "Phường 19", "Phường 28",
	}},
	{Name: "Quận Bình Tân", Wards: []string{
		"Phường Bình Hưng Hòa", "Phường Bình Hưng Hòa A", "Phường Bình Hưng Hòa B",
		"Phường Bình Trị Đông", "Phường Bình Trị Đông A", "Phường Bình Trị Đông B", "Phường Tân Tạo",
		"Phường Tân Tạo A", "Phường An Lạc", "Phường An Lạc A",
	}},
	{Name: "Quận Gò Vấp", Wards: []string{
		"Phường 15", "Phường 13", "Phường 17", "Phường 06", "Phường 16", "Phường 12", "Phường 14",
		"Phường 10", "Phường 05", "Phường 07", "Phường 04", "Phường 01", "Phường 09", "Phường 08",
		"Phường 11", "Phường 03",
	}},
	{Name: "Quận Phú Nhuận", Wards: []string{
		"Phường 04", "Phường 05", "Phường 09", "Phường 07", "Phường 03", "Phường 01", "Phường 02",
		"Phường 08", "Phường 15", "Phường 10", "Phường 11", "Phường 17", "Phường 14", "Phường 12",
		"Phường 13",
	}},
	{Name: "Quận Tân Bình", Wards: []string{
		"Phường 02", "Phường 04", "Phường 12", "Phường 13", "Phường 01", "Phường 03", "Phường 11",
		"Phường 07", "Phường 05", "Phường 10", "Phường 06", "Phường 08", "Phường 09", "Phường 14",
		"Phường 15",
	}},
	{Name: "Quận Tân Phú", Wards: []string{
		"Phường Tân Sơn Nhì", "Phường Tây Thạnh", "Phường Sơn Kỳ", "Phường Tân Quý", "Phường Tân Thành",
		"Phường Phú Thọ Hòa", "Phường Phú Thạnh", "Phường Phú Trung", "Phường Hòa Thạnh",
		"Phường Hiệp Tân", "Phường Tân Thới Hòa",
	}},
	{Name: "Quận Thủ Đức", Wards: []string{
		"Phường Linh Xuân", "Phường Bình Chiểu", "Phường Linh Trung", "Phường Tam Bình",
		"Phường Tam Phú", "Phường Hiệp Bình Phước", "Phường Hiệp Bình Chánh", "Phường Linh Chiểu",
		"Phường Linh Tây", "Phường Linh Đông", "Phường Bình Thọ", "Phường Trường Thọ",
	}},
	{Name: "Huyện Hóc Môn", Wards: []string{
		"Thị trấn Hóc Môn", "Xã Tân Hiệp", "Xã Nhị Bình", "Xã Đông Thạnh", "Xã Tân Thới Nhì",
		"Xã Thới Tam Thôn", "Xã Xuân Thới Sơn", "Xã Tân Xuân", "Xã Xuân Thới Đông", "Xã Trung Chánh",
		"Xã Xuân Thới Thượng", "Xã Bà Điểm",
	}},
	{Name: "Huyện Bình Chánh", Wards: []string{
		"Thị trấn Tân Túc", "Xã Phạm Văn Hai", "Xã Vĩnh Lộc A", "Xã Vĩnh Lộc B", "Xã Bình Lợi",
		"Xã Lê Minh Xuân", "Xã Tân Nhựt", "Xã Tân Kiên", "Xã Bình Hưng", "Xã Phong Phú", "Xã An Phú Tây",
		"Xã Hưng Long", "Xã Đa Phước", "Xã Tân Quý Tây", "Xã Bình Chánh", "Xã Quy Đức",
	}},
	{Name: "Huyện Nhà Bè", Wards: []string{
		"Thị trấn Nhà Bè", "Xã Phước Kiển", "Xã Phước Lộc", "Xã Nhơn Đức", "Xã Phú Xuân", "Xã Long Thới",
		"Xã Hiệp Phước",
	}},
	{Name: "Huyện Cần Giờ", Wards: []string{
		"Thị trấn Cần Thạnh", "Xã Bình Khánh", "Xã Tam Thôn Hiệp", "Xã An Thới Đông", "Xã Thạnh An",
		"Xã Long Hòa", "Xã Lý Nhơn",
	}},
	{Name: "Huyện Củ Chi", Wards: []string{
		"Thị trấn Củ Chi", "Xã Phú Mỹ Hưng", "Xã An Phú", "Xã Trung Lập Thượng", "Xã An Nhơn Tây",
		"Xã Nhuận Đức", "Xã Phạm Văn Cội", "Xã Phú Hòa Đông", "Xã Trung Lập Hạ", "Xã Trung An",
		"Xã Phước Thạnh", "Xã Phước Hiệp", "Xã Tân An Hội", "Xã Phước Vĩnh An", "Xã Thái Mỹ",
		"Xã Tân Thạnh Tây", "Xã Hòa Phú", "Xã Tân Thạnh Đông", "Xã Bình Mỹ", "Xã Tân Phú Trung",
		"Xã Tân Thông Hội",
	}},
}
