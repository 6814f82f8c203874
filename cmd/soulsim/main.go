// soulsim runs a personality population offline: root generation,
// experience-driven drift, inheritance across generations, and social
// compatibility reports. Useful for tuning taxonomy files and eyeballing
// how a colony's social graph evolves.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"sort"

	"voxelsoul.ai/internal/persistence/journal"
	"voxelsoul.ai/internal/persona"
	"voxelsoul.ai/internal/persona/catalog"
)

func main() {
	var (
		agents       = flag.Int("agents", 8, "population size per generation")
		generations  = flag.Int("generations", 3, "generations to simulate")
		events       = flag.Int("events", 200, "outcome events per generation")
		mutationRate = flag.Float64("mutation-rate", 0.1, "inheritance mutation rate [0,1]")
		seed         = flag.Int64("seed", 42, "rng seed")
		taxonomyPath = flag.String("taxonomy", "", "optional taxonomy YAML override")
		journalDir   = flag.String("journal", "", "optional outcome journal directory")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[soulsim] ", log.LstdFlags|log.Lmicroseconds)

	cat := catalog.Default()
	if *taxonomyPath != "" {
		var err error
		cat, err = catalog.Load(*taxonomyPath)
		if err != nil {
			logger.Fatalf("load taxonomy: %v", err)
		}
		logger.Printf("taxonomy loaded from %s", *taxonomyPath)
	}

	var jw *journal.Writer
	var outJournal persona.Journal
	if *journalDir != "" {
		jw = journal.NewWriter(*journalDir, "outcomes")
		defer jw.Close()
		outJournal = jw
	}

	ancestry := persona.NewAncestry()
	factory := persona.NewFactory(cat, *seed, ancestry)
	adapter := persona.NewExperienceAdapter(cat, outJournal)
	engine := persona.NewEngine(cat)
	graph := persona.NewSocialGraph(engine, *seed)
	rng := rand.New(rand.NewSource(*seed + 1))

	population := make(map[string]*persona.Personality, *agents)
	for i := 0; i < *agents; i++ {
		p := factory.GenerateRoot()
		population[p.ID] = p
	}
	logger.Printf("generation 0: %d root personalities", len(population))

	for gen := 0; gen < *generations; gen++ {
		runOutcomes(logger, rng, cat, adapter, population, *events)
		report(logger, cat, graph, population, gen)

		if gen == *generations-1 {
			break
		}
		next := make(map[string]*persona.Personality, *agents)
		parents := ids(population)
		for i := 0; i < *agents; i++ {
			parent := population[parents[rng.Intn(len(parents))]]
			child := factory.Inherit(parent, *mutationRate)
			next[child.ID] = child
		}
		population = next
		logger.Printf("generation %d: %d inherited personalities (ancestry size %d)", gen+1, len(population), ancestry.Len())
	}

	roundTrip(logger, factory, population)
}

func runOutcomes(logger *log.Logger, rng *rand.Rand, cat *catalog.Catalog, adapter *persona.ExperienceAdapter, population map[string]*persona.Personality, events int) {
	cats := cat.Categories()
	all := ids(population)
	changes := 0
	for i := 0; i < events; i++ {
		id := all[rng.Intn(len(all))]
		c := cats[rng.Intn(len(cats))]
		opts, err := cat.Options(c)
		if err != nil {
			logger.Fatalf("options %s: %v", c, err)
		}
		item := opts[rng.Intn(len(opts))]
		change, err := adapter.Record(population[id], c, item, rng.Float64() < 0.6)
		if err != nil {
			logger.Fatalf("record outcome: %v", err)
		}
		if change != persona.ChangeNone {
			changes++
		}
	}
	logger.Printf("outcomes: %d events, %d structural preference changes", events, changes)
}

func report(logger *log.Logger, cat *catalog.Catalog, graph *persona.SocialGraph, population map[string]*persona.Personality, gen int) {
	all := ids(population)
	subject := population[all[0]]

	s := persona.Summarize(cat, subject)
	logger.Printf("gen %d subject %s traits: %s", gen, short(subject.ID), s.Traits)
	logger.Printf("gen %d subject loves %v hates %v", gen, s.Loves, s.Hates)

	for _, m := range graph.FindCompatible(subject, population, 0.2) {
		logger.Printf("  ally  %s score=%.2f %s", short(m.ID), m.Score, m.Relation)
	}
	for _, m := range graph.FindRivals(subject, population, -0.2) {
		logger.Printf("  rival %s score=%.2f %s", short(m.ID), m.Score, m.Relation)
	}
	if topic, ok := graph.ConversationTopic(subject); ok {
		logger.Printf("  topic: %s %s (%s)", topic.Sentiment, topic.Item, topic.Category)
	}
}

func roundTrip(logger *log.Logger, factory *persona.Factory, population map[string]*persona.Personality) {
	for _, id := range ids(population) {
		exported, err := persona.Export(population[id])
		if err != nil {
			logger.Fatalf("export: %v", err)
		}
		back := persona.Import(exported, factory)
		if back.ID != id {
			logger.Fatalf("round trip changed id: %s -> %s", id, back.ID)
		}
		logger.Printf("round trip ok for %s (%d bytes)", short(id), len(exported))
		return
	}
}

func ids(population map[string]*persona.Personality) []string {
	out := make([]string, 0, len(population))
	for id := range population {
		out = append(out, id)
	}
	// Deterministic order regardless of map iteration.
	sort.Strings(out)
	return out
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
