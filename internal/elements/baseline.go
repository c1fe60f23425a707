package elements

type baseElement struct {
	number    int
	symbol    string
	name      string
	localName string
	mass      float64
}

type baseCompound struct {
	formula string
	mass    float64
}

// Standard atomic weights, 3 decimal places where known. Mass numbers of the
// most stable isotope for elements without a standard weight.
var periodicTable = []baseElement{
	{1, "H", "Hydrogen", "氢", 1.008},
	{2, "He", "Helium", "氦", 4.003},
	{3, "Li", "Lithium", "锂", 6.941},
	{4, "Be", "Beryllium", "铍", 9.012},
	{5, "B", "Boron", "硼", 10.811},
	{6, "C", "Carbon", "碳", 12.011},
	{7, "N", "Nitrogen", "氮", 14.007},
	{8, "O", "Oxygen", "氧", 15.999},
	{9, "F", "Fluorine", "氟", 18.998},
	{10, "Ne", "Neon", "氖", 20.180},
	{11, "Na", "Sodium", "钠", 22.990},
	{12, "Mg", "Magnesium", "镁", 24.305},
	{13, "Al", "Aluminium", "铝", 26.982},
	{14, "Si", "Silicon", "硅", 28.086},
	{15, "P", "Phosphorus", "磷", 30.974},
	{16, "S", "Sulfur", "硫", 32.066},
	{17, "Cl", "Chlorine", "氯", 35.453},
	{18, "Ar", "Argon", "氩", 39.948},
	{19, "K", "Potassium", "钾", 39.098},
	{20, "Ca", "Calcium", "钙", 40.078},
	{21, "Sc", "Scandium", "钪", 44.956},
	{22, "Ti", "Titanium", "钛", 47.867},
	{23, "V", "Vanadium", "钒", 50.942},
	{24, "Cr", "Chromium", "铬", 51.996},
	{25, "Mn", "Manganese", "锰", 54.938},
	{26, "Fe", "Iron", "铁", 55.845},
	{27, "Co", "Cobalt", "钴", 58.933},
	{28, "Ni", "Nickel", "镍", 58.693},
	{29, "Cu", "Copper", "铜", 63.546},
	{30, "Zn", "Zinc", "锌", 65.380},
	{31, "Ga", "Gallium", "镓", 69.723},
	{32, "Ge", "Germanium", "锗", 72.640},
	{33, "As", "Arsenic", "砷", 74.922},
	{34, "Se", "Selenium", "硒", 78.960},
	{35, "Br", "Bromine", "溴", 79.904},
	{36, "Kr", "Krypton", "氪", 83.798},
	{37, "Rb", "Rubidium", "铷", 85.468},
	{38, "Sr", "Strontium", "锶", 87.620},
	{39, "Y", "Yttrium", "钇", 88.906},
	{40, "Zr", "Zirconium", "锆", 91.224},
	{41, "Nb", "Niobium", "铌", 92.906},
	{42, "Mo", "Molybdenum", "钼", 95.960},
	{43, "Tc", "Technetium", "锝", 98.000},
	{44, "Ru", "Ruthenium", "钌", 101.070},
	{45, "Rh", "Rhodium", "铑", 102.906},
	{46, "Pd", "Palladium", "钯", 106.420},
	{47, "Ag", "Silver", "银", 107.868},
	{48, "Cd", "Cadmium", "镉", 112.411},
	{49, "In", "Indium", "铟", 114.818},
	{50, "Sn", "Tin", "锡", 118.710},
	{51, "Sb", "Antimony", "锑", 121.760},
	{52, "Te", "Tellurium", "碲", 127.600},
	{53, "I", "Iodine", "碘", 126.904},
	{54, "Xe", "Xenon", "氙", 131.293},
	{55, "Cs", "Caesium", "铯", 132.905},
	{56, "Ba", "Barium", "钡", 137.327},
	{57, "La", "Lanthanum", "镧", 138.905},
	{58, "Ce", "Cerium", "铈", 140.116},
	{59, "Pr", "Praseodymium", "镨", 140.908},
	{60, "Nd", "Neodymium", "钕", 144.242},
	{61, "Pm", "Promethium", "钷", 145.000},
	{62, "Sm", "Samarium", "钐", 150.360},
	{63, "Eu", "Europium", "铕", 151.964},
	{64, "Gd", "Gadolinium", "钆", 157.250},
	{65, "Tb", "Terbium", "铽", 158.925},
	{66, "Dy", "Dysprosium", "镝", 162.500},
	{67, "Ho", "Holmium", "钬", 164.930},
	{68, "Er", "Erbium", "铒", 167.259},
	{69, "Tm", "Thulium", "铥", 168.934},
	{70, "Yb", "Ytterbium", "镱", 173.054},
	{71, "Lu", "Lutetium", "镥", 174.967},
	{72, "Hf", "Hafnium", "铪", 178.490},
	{73, "Ta", "Tantalum", "钽", 180.948},
	{74, "W", "Tungsten", "钨", 183.840},
	{75, "Re", "Rhenium", "铼", 186.207},
	{76, "Os", "Osmium", "锇", 190.230},
	{77, "Ir", "Iridium", "铱", 192.217},
	{78, "Pt", "Platinum", "铂", 195.084},
	{79, "Au", "Gold", "金", 196.967},
	{80, "Hg", "Mercury", "汞", 200.590},
	{81, "Tl", "Thallium", "铊", 204.380},
	{82, "Pb", "Lead", "铅", 207.200},
	{83, "Bi", "Bismuth", "铋", 208.980},
	{84, "Po", "Polonium", "钋", 209.000},
	{85, "At", "Astatine", "砹", 210.000},
	{86, "Rn", "Radon", "氡", 222.000},
	{87, "Fr", "Francium", "钫", 223.000},
	{88, "Ra", "Radium", "镭", 226.000},
	{89, "Ac", "Actinium", "锕", 227.000},
	{90, "Th", "Thorium", "钍", 232.038},
	{91, "Pa", "Protactinium", "镤", 231.036},
	{92, "U", "Uranium", "铀", 238.029},
	{93, "Np", "Neptunium", "镎", 237.000},
	{94, "Pu", "Plutonium", "钚", 244.000},
	{95, "Am", "Americium", "镅", 243.000},
	{96, "Cm", "Curium", "锔", 247.000},
	{97, "Bk", "Berkelium", "锫", 247.000},
	{98, "Cf", "Californium", "锎", 251.000},
	{99, "Es", "Einsteinium", "锿", 252.000},
	{100, "Fm", "Fermium", "镄", 257.000},
	{101, "Md", "Mendelevium", "钔", 258.000},
	{102, "No", "Nobelium", "锘", 259.000},
	{103, "Lr", "Lawrencium", "铹", 262.000},
	{104, "Rf", "Rutherfordium", "𬬻", 267.000},
	{105, "Db", "Dubnium", "𬭊", 268.000},
	{106, "Sg", "Seaborgium", "𬭳", 269.000},
	{107, "Bh", "Bohrium", "𬭛", 270.000},
	{108, "Hs", "Hassium", "𬭶", 269.000},
	{109, "Mt", "Meitnerium", "鿏", 278.000},
	{110, "Ds", "Darmstadtium", "𫟼", 281.000},
	{111, "Rg", "Roentgenium", "𬬭", 282.000},
	{112, "Cn", "Copernicium", "鿔", 285.000},
	{113, "Nh", "Nihonium", "鿭", 286.000},
	{114, "Fl", "Flerovium", "𫓧", 289.000},
	{115, "Mc", "Moscovium", "镆", 290.000},
	{116, "Lv", "Livermorium", "𫟷", 293.000},
	{117, "Ts", "Tennessine", "鿬", 294.000},
	{118, "Og", "Oganesson", "鿫", 294.000},
}

// Oxides, hydroxides, nitrates and their hydrates for the elements that show
// up in supported catalysts. Formulas are plain text and are formatted when
// the table is built.
var catalystCompounds = map[string][]baseCompound{
	"Li": {{"Li2O", 29.881}, {"LiOH", 23.948}, {"LiNO3", 68.946}, {"LiNO3.3H2O", 123.013}},
	"Na": {{"Na2O", 61.979}, {"NaOH", 39.997}, {"NaNO3", 84.995}},
	"Mg": {{"MgO", 40.304}, {"Mg(OH)2", 58.319}, {"Mg(NO3)2", 148.315}, {"Mg(NO3)2.6H2O", 256.406}},
	"Al": {{"Al2O3", 101.961}, {"Al(OH)3", 78.003}, {"Al(NO3)3", 212.996}, {"Al(NO3)3.9H2O", 375.134}},
	"Si": {{"SiO2", 60.084}},
	"K":  {{"K2O", 94.196}, {"KOH", 56.105}, {"KNO3", 101.103}},
	"Ca": {{"CaO", 56.077}, {"Ca(OH)2", 74.092}, {"Ca(NO3)2", 164.088}, {"Ca(NO3)2.4H2O", 236.149}},
	"Ti": {{"TiO2", 79.866}, {"Ti2O3", 143.732}},
	"V":  {{"V2O5", 181.880}, {"VO2", 82.941}, {"NH4VO3", 116.978}},
	"Cr": {{"Cr2O3", 151.990}, {"CrO3", 99.994}, {"Cr(OH)3", 103.017}, {"Cr(NO3)3", 238.011}, {"Cr(NO3)3.9H2O", 400.149}},
	"Mn": {{"MnO", 70.937}, {"MnO2", 86.937}, {"Mn2O3", 157.874}, {"Mn3O4", 228.812}, {"Mn(OH)2", 88.952}, {"Mn(NO3)2", 178.948}, {"Mn(NO3)2.4H2O", 251.009}},
	"Fe": {{"Fe2O3", 159.688}, {"Fe3O4", 231.533}, {"FeO", 71.844}, {"Fe(OH)3", 106.866}, {"Fe(NO3)3", 241.860}, {"Fe(NO3)3.9H2O", 404.000}},
	"Co": {{"CoO", 74.932}, {"Co3O4", 240.798}, {"Co(OH)2", 92.947}, {"Co(NO3)2", 182.943}, {"Co(NO3)2.6H2O", 291.035}},
	"Ni": {{"NiO", 74.692}, {"Ni2O3", 165.385}, {"Ni(OH)2", 92.707}, {"Ni(NO3)2", 182.703}, {"Ni(NO3)2.6H2O", 290.795}},
	"Cu": {{"CuO", 79.545}, {"Cu2O", 143.091}, {"Cu(OH)2", 97.560}, {"Cu(NO3)2", 187.556}, {"Cu(NO3)2.3H2O", 241.602}, {"Cu(NO3)2.6H2O", 295.647}},
	"Zn": {{"ZnO", 81.379}, {"Zn(OH)2", 99.394}, {"Zn(NO3)2", 189.390}, {"Zn(NO3)2.6H2O", 297.441}},
	"Ga": {{"Ga2O3", 187.444}, {"Ga(OH)3", 120.744}, {"Ga(NO3)3", 255.737}, {"Ga(NO3)3.8H2O", 399.873}},
	"Y":  {{"Y2O3", 225.810}, {"Y(NO3)3", 274.921}, {"Y(NO3)3.6H2O", 383.013}},
	"Zr": {{"ZrO2", 123.223}, {"Zr(OH)4", 159.252}, {"Zr(NO3)4", 339.256}, {"Zr(NO3)4.5H2O", 429.337}, {"ZrO(NO3)2", 231.231}},
	"Mo": {{"MoO3", 143.958}, {"MoO2", 127.959}, {"(NH4)6Mo7O24.4H2O", 1235.858}},
	"Ru": {{"RuO2", 133.069}, {"RuCl3", 207.429}, {"Ru(NO3)3", 270.085}},
	"Rh": {{"Rh2O3", 253.809}, {"Rh(NO3)3", 271.921}},
	"Pd": {{"PdO", 122.419}, {"PdCl2", 177.326}, {"Pd(NO3)2", 230.430}, {"Pd(NO3)2.2H2O", 266.460}},
	"Ag": {{"Ag2O", 231.735}, {"AgNO3", 169.873}},
	"In": {{"In2O3", 277.634}, {"In(OH)3", 165.839}, {"In(NO3)3", 300.832}, {"In(NO3)3.5H2O", 390.913}},
	"Sn": {{"SnO2", 150.709}, {"SnO", 134.709}},
	"Cs": {{"Cs2O", 281.810}, {"CsOH", 149.912}, {"CsNO3", 194.910}},
	"Ba": {{"BaO", 153.326}, {"Ba(OH)2", 171.341}, {"Ba(NO3)2", 261.337}},
	"La": {{"La2O3", 325.808}, {"La(OH)3", 189.926}, {"La(NO3)3", 324.920}, {"La(NO3)3.6H2O", 433.012}},
	"Ce": {{"CeO2", 172.115}, {"Ce2O3", 328.230}, {"Ce(OH)4", 208.144}, {"Ce(NO3)3", 326.131}, {"Ce(NO3)3.6H2O", 434.221}},
	"W":  {{"WO3", 231.839}, {"WO2", 215.839}, {"(NH4)6H2W12O40", 2956.290}},
	"Ir": {{"IrO2", 224.216}, {"Ir(NO3)3", 331.232}},
	"Pt": {{"PtO2", 227.083}, {"Pt(NO3)2", 319.089}, {"H2PtCl6.6H2O", 517.904}},
	"Au": {{"Au2O3", 441.931}, {"HAuCl4.4H2O", 411.847}},
	"Bi": {{"Bi2O3", 465.959}, {"Bi(OH)3", 260.001}, {"Bi(NO3)3", 394.995}, {"Bi(NO3)3.5H2O", 485.076}},
}
