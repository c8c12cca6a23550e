package checker

import "math"

// naive bayes text classifier, based on the code from
// https://github.com/RadhiFadlillah/go-bayesian/blob/master/classifier.go

// textClass is alias of string, representing class of a document
type textClass string

const (
	classSpam textClass = "spam"
	classHam  textClass = "ham"
)

// document is a group of tokens with certain class
type document struct {
	textClass textClass
	tokens    []string
}

// newDocument return new document
func newDocument(class textClass, tokens ...string) document {
	return document{
		textClass: class,
		tokens:    tokens,
	}
}

// classifier is object for a classifying document
type classifier struct {
	learningResults    map[string]map[textClass]int
	priorProbabilities map[textClass]float64
	nDocumentByClass   map[textClass]int
	nFrequencyByClass  map[textClass]int
	nAllDocument       int
}

// newClassifier returns new classifier
func newClassifier() classifier {
	return classifier{
		learningResults:    make(map[string]map[textClass]int),
		priorProbabilities: make(map[textClass]float64),
		nDocumentByClass:   make(map[textClass]int),
		nFrequencyByClass:  make(map[textClass]int),
	}
}

// learn executes the learning process for this classifier
func (c *classifier) learn(docs ...document) {
	c.nAllDocument += len(docs)

	for _, doc := range docs {
		c.nDocumentByClass[doc.textClass]++
		tokens := c.removeDuplicate(doc.tokens...)

		for _, token := range tokens {
			c.nFrequencyByClass[doc.textClass]++

			if _, exist := c.learningResults[token]; !exist {
				c.learningResults[token] = make(map[textClass]int)
			}

			c.learningResults[token][doc.textClass]++
		}
	}

	for class, nDocument := range c.nDocumentByClass {
		c.priorProbabilities[class] = math.Log(float64(nDocument) / float64(c.nAllDocument))
	}
}

// reset resets all learning results
func (c *classifier) reset() {
	c.learningResults = make(map[string]map[textClass]int)
	c.priorProbabilities = make(map[textClass]float64)
	c.nDocumentByClass = make(map[textClass]int)
	c.nFrequencyByClass = make(map[textClass]int)
	c.nAllDocument = 0
}

// classify executes the classifying process for tokens
func (c *classifier) classify(tokens ...string) (textClass, float64, bool) {
	nVocabulary := len(c.learningResults)
	posteriorProbabilities := make(map[textClass]float64)

	for class, priorProb := range c.priorProbabilities {
		posteriorProbabilities[class] = priorProb
	}
	tokens = c.removeDuplicate(tokens...)

	for class, freqByClass := range c.nFrequencyByClass {
		for _, token := range tokens {
			nToken := c.learningResults[token][class]
			posteriorProbabilities[class] += math.Log(float64(nToken+1) / float64(freqByClass+nVocabulary))
		}
	}

	probabilities := softmax(posteriorProbabilities)

	// find the best class and its probability
	var certain bool
	var bestClass textClass
	var highestProb float64
	for class, prob := range probabilities {
		if highestProb == 0 || prob > highestProb {
			certain = true
			bestClass = class
			highestProb = prob
		} else if prob == highestProb {
			certain = false
		}
	}

	highestProb *= 100 // convert probability to percentage
	return bestClass, highestProb, certain
}

func (c *classifier) removeDuplicate(tokens ...string) []string {
	mapTokens := make(map[string]struct{})
	newTokens := []string{}

	for _, token := range tokens {
		mapTokens[token] = struct{}{}
	}

	for key := range mapTokens {
		newTokens = append(newTokens, key)
	}

	return newTokens
}

// softmax converts log probabilities to normalized probabilities
func softmax(logProbs map[textClass]float64) map[textClass]float64 {
	sum := 0.0
	probs := make(map[textClass]float64)

	for _, logProb := range logProbs {
		sum += math.Exp(logProb)
	}

	for class, logProb := range logProbs {
		probs[class] = math.Exp(logProb) / sum
	}

	return probs
}
