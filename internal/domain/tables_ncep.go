package domain

/*
 * US National Weather Service - NCEP (WMC)
 * Center: 7
 * Subcenter: 0
 * Parameter table version: 2
 * WMO standard table 2 as distributed by NCEP (codes 1-127 are WMO
 * standard; only the first block is carried).
 */
var ncepTable2 = TableSource{
	Key:  TableKey{Center: 7, Subcenter: 0, Version: 2},
	Name: "US National Weather Service - NCEP (WMC)",
	Note: "WMO standard table 2",
	Entries: []ParameterEntry{
		{1, "Pressure", "Pa", "PRES"},
		{2, "Pressure reduced to MSL", "Pa", "PRMSL"},
		{3, "Pressure tendency", "Pa/s", "PTEND"},
		{4, "Potential vorticity", "K m2 kg-1 s-1", "PVORT"},
		{5, "ICAO Standard Atmosphere Reference Height", "m", "ICAHT"},
		{6, "Geopotential", "m2/s2", "GP"},
		{7, "Geopotential height", "gpm", "HGT"},
		{8, "Geometric height", "m", "DIST"},
		{9, "Standard deviation of height", "m", "HSTDV"},
		{10, "Total ozone", "Dobson", "TOZNE"},
		{11, "Temperature", "K", "TMP"},
		{12, "Virtual temperature", "K", "VTMP"},
		{13, "Potential temperature", "K", "POT"},
		{14, "Equivalent potential temperature", "K", "EPOT"},
		{15, "Maximum temperature", "K", "TMAX"},
		{16, "Minimum temperature", "K", "TMIN"},
		{17, "Dew point temperature", "K", "DPT"},
		{18, "Dew point depression (or deficit)", "K", "DEPR"},
		{19, "Lapse rate", "K/m", "LAPR"},
		{20, "Visibility", "m", "VIS"},
		{21, "Radar Spectra (1)", "", "RDSP1"},
		{22, "Radar Spectra (2)", "", "RDSP2"},
		{23, "Radar Spectra (3)", "", "RDSP3"},
		{24, "Parcel lifted index (to 500 hPa)", "K", "PLI"},
		{25, "Temperature anomaly", "K", "TMPA"},
		{26, "Pressure anomaly", "Pa", "PRESA"},
		{27, "Geopotential height anomaly", "gpm", "GPA"},
		{28, "Wave Spectra (1)", "", "WVSP1"},
		{29, "Wave Spectra (2)", "", "WVSP2"},
		{30, "Wave Spectra (3)", "", "WVSP3"},
		{31, "Wind direction (from which blowing)", "deg true", "WDIR"},
		{32, "Wind speed", "m/s", "WIND"},
		{33, "u-component of wind", "m/s", "UGRD"},
		{34, "v-component of wind", "m/s", "VGRD"},
		{35, "Stream function", "m2/s", "STRM"},
		{36, "Velocity potential", "m2/s", "VPOT"},
		{37, "Montgomery stream function", "m2/s2", "MNTSF"},
		{38, "Sigma coordinate vertical velocity", "/s", "SGCVV"},
		{39, "Vertical velocity (pressure)", "Pa/s", "VVEL"},
		{40, "Vertical velocity (geometric)", "m/s", "DZDT"},
		{41, "Absolute vorticity", "/s", "ABSV"},
		{42, "Absolute divergence", "/s", "ABSD"},
		{43, "Relative vorticity", "/s", "RELV"},
		{44, "Relative divergence", "/s", "RELD"},
		{51, "Specific humidity", "kg/kg", "SPFH"},
		{52, "Relative humidity", "%", "RH"},
		{59, "Precipitation rate", "kg/m2/s", "PRATE"},
		{61, "Total precipitation", "kg/m2", "APCP"},
		{65, "Water equiv. of accum. snow depth", "kg/m2", "WEASD"},
		{71, "Total cloud cover", "%", "TCDC"},
		{81, "Land cover (1=land, 0=sea)", "proportion", "LAND"},
		{111, "Net short-wave radiation flux (surface)", "W/m2", "NSWRS"},
		{112, "Net long wave radiation flux (surface)", "W/m2", "NLWRS"},
	},
}
