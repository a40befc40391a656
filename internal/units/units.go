package units

// MLPerOunce is the number of millilitres in one US fluid ounce
const MLPerOunce = 29.5735295625

// MLToOunces converts millilitres to US fluid ounces
func MLToOunces(ml float64) float64 {
	return ml / MLPerOunce
}

// OuncesToML converts US fluid ounces to millilitres
func OuncesToML(oz float64) float64 {
	return oz * MLPerOunce
}
