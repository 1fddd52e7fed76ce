// Package lasagna calculates cooking times for a layered lasagna.
package lasagna

const (
	// ExpectedBakeTime is how long the lasagna should bake, in minutes.
	ExpectedBakeTime = 40
	// PreparationTimePerLayer is the time needed to prepare one layer, in minutes.
	PreparationTimePerLayer = 2
)

// BakeTimeRemaining returns the minutes left to bake given the minutes already spent
// in the oven. The result is negative once the lasagna is overdone.
func BakeTimeRemaining(elapsedBakeTime int) int {
	return ExpectedBakeTime - elapsedBakeTime
}

// PreparationTimeInMinutes returns the preparation time for the given number of layers.
func PreparationTimeInMinutes(layers int) int {
	return layers * PreparationTimePerLayer
}

// ElapsedTimeInMinutes returns preparation time plus the minutes already spent baking.
func ElapsedTimeInMinutes(layers, elapsedBakeTime int) int {
	return PreparationTimeInMinutes(layers) + elapsedBakeTime
}
