package local

import "nlp-task-calendar/pkg/nlp"

// parse assigns heads and dependency labels with a shallow chunk-based
// heuristic and returns the noun chunks. tokens must already carry POS and
// lemma.
//
//   - the first VERB (else AUX, else token 0) is ROOT
//   - DET? (ADJ|NUM)* (NOUN|PROPN)+ or a lone PRON forms a chunk headed by
//     its last token
//   - a chunk after ADP is its pobj; after a verb (optionally across one
//     ADV) it is the verb's dobj, or attr when the verb is "be"
//   - an ADP right after a verb is the verb's prep, after a chunk the
//     chunk head's prep
func parse(tokens []nlp.Token) []nlp.Span {
	if len(tokens) == 0 {
		return nil
	}

	root := findRoot(tokens)
	for i := range tokens {
		tokens[i].Head = root
		tokens[i].Dep = nlp.DepOther
	}
	tokens[root].Dep = nlp.DepRoot

	chunks := findChunks(tokens)
	chunkHead := make(map[int]int, len(tokens)) // token -> head of its chunk
	for _, c := range chunks {
		h := c.End - 1
		for k := c.Start; k < c.End; k++ {
			chunkHead[k] = h
			if k == h {
				continue
			}
			tokens[k].Head = h
			switch tokens[k].POS {
			case nlp.POSDet:
				tokens[k].Dep = nlp.DepDet
			case nlp.POSAdj, nlp.POSNum:
				tokens[k].Dep = nlp.DepAmod
			default:
				tokens[k].Dep = nlp.DepCompound
			}
		}
		attachChunk(tokens, c, root)
	}

	for i := range tokens {
		if tokens[i].POS != nlp.POSAdp || i == root {
			continue
		}
		tokens[i].Dep = nlp.DepPrep
		if v, ok := verbBefore(tokens, i); ok {
			tokens[i].Head = v
			continue
		}
		if h, ok := chunkHead[i-1]; ok && i > 0 {
			tokens[i].Head = h
		}
	}

	return chunks
}

func findRoot(tokens []nlp.Token) int {
	for i, t := range tokens {
		if t.POS == nlp.POSVerb {
			return i
		}
	}
	for i, t := range tokens {
		if t.POS == nlp.POSAux {
			return i
		}
	}
	return 0
}

func findChunks(tokens []nlp.Token) []nlp.Span {
	var chunks []nlp.Span
	for i := 0; i < len(tokens); {
		if tokens[i].POS == nlp.POSPron {
			chunks = append(chunks, nlp.Span{Start: i, End: i + 1})
			i++
			continue
		}
		j := i
		if tokens[j].POS == nlp.POSDet {
			j++
		}
		for j < len(tokens) && (tokens[j].POS == nlp.POSAdj || tokens[j].POS == nlp.POSNum) {
			j++
		}
		nouns := j
		for j < len(tokens) && (tokens[j].POS == nlp.POSNoun || tokens[j].POS == nlp.POSPropn) {
			j++
		}
		if j > nouns {
			chunks = append(chunks, nlp.Span{Start: i, End: j})
			i = j
			continue
		}
		i++
	}
	return chunks
}

func attachChunk(tokens []nlp.Token, c nlp.Span, root int) {
	h := c.End - 1
	if h == root {
		return
	}
	prev := c.Start - 1
	if prev >= 0 && (tokens[prev].POS == nlp.POSAdp || tokens[prev].POS == nlp.POSPart) {
		tokens[h].Head = prev
		tokens[h].Dep = nlp.DepPObj
		return
	}
	if v, ok := verbBefore(tokens, c.Start); ok {
		tokens[h].Head = v
		tokens[h].Dep = nlp.DepDObj
		if tokens[v].Lemma == "be" {
			tokens[h].Dep = nlp.DepAttr
		}
		return
	}
	if c.Start < root {
		tokens[h].Dep = nlp.DepNSubj
	}
}

// verbBefore returns the verb directly before i, allowing one adverb between.
func verbBefore(tokens []nlp.Token, i int) (int, bool) {
	p := i - 1
	if p >= 0 && tokens[p].POS == nlp.POSAdv {
		p--
	}
	if p >= 0 && (tokens[p].POS == nlp.POSVerb || tokens[p].POS == nlp.POSAux) {
		return p, true
	}
	return 0, false
}
