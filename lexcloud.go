// Package lexcloud renders weighted term clouds: given a frequency
// distribution over (lemma, part-of-speech) terms, every term is emitted at
// a display size proportional to its frequency and a color determined by its
// category. The numeric core is a generic linear range projection (Rescale)
// feeding a categorical rendering pass (Render); everything else — stopword
// lists, frequency aggregation, the morphology-service client, and the HTML
// formatter — exists to feed or consume those two.
package lexcloud

// Visualize renders fd as term-cloud markup: Render composed with CloudHTML.
// See Render for filter and sizing semantics.
func Visualize(fd *FrequencyDistribution, styles StyleTable, allowed []PartOfSpeech, sizes SizeRange) (string, error) {
	descriptors, err := Render(fd, styles, allowed, sizes)
	if err != nil {
		return "", err
	}
	return CloudHTML(descriptors), nil
}
