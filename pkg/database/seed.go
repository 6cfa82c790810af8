package database

import (
	"log"
	"solo_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type seedQuestion struct {
	topic       string
	level       model.SOLOLevel
	question    string
	options     [4]string
	correct     string
	explanation string
}

// 默认题库：知识图谱课程的示例题目
var defaultQuestions = []seedQuestion{
	{
		topic:    "Basics of Knowledge Graphs",
		level:    model.PreStructural,
		question: "Which statement about Knowledge Graphs is a common misconception?",
		options: [4]string{
			"Knowledge Graphs are just fancy databases",
			"Knowledge Graphs represent structured knowledge using entities and relationships",
			"Knowledge Graphs enable semantic reasoning",
			"Knowledge Graphs support flexible schemas",
		},
		correct:     "Knowledge Graphs are just fancy databases",
		explanation: "This is a misconception. While KGs use databases for storage, they are fundamentally different - they represent semantic relationships, enable reasoning, and have flexible schemas unlike traditional databases.",
	},
	{
		topic:    "Basics of Knowledge Graphs",
		level:    model.UniStructural,
		question: "What is a Knowledge Graph?",
		options: [4]string{
			"A type of database",
			"A structured representation of knowledge using entities and relationships",
			"A search algorithm",
			"A programming language",
		},
		correct:     "A structured representation of knowledge using entities and relationships",
		explanation: "A Knowledge Graph is a structured way to represent real-world knowledge using entities (nodes) and their relationships (edges).",
	},
	{
		topic:    "Basics of Knowledge Graphs",
		level:    model.MultiStructural,
		question: "Which of the following are components of a Knowledge Graph?",
		options: [4]string{
			"Entities and Relations",
			"Nodes and Edges",
			"Triples",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "Knowledge Graphs consist of entities (nodes), relations (edges), and are often represented as triples (subject-predicate-object).",
	},
	{
		topic:    "Basics of Knowledge Graphs",
		level:    model.Relational,
		question: "How does a Knowledge Graph differ from a traditional relational database?",
		options: [4]string{
			"KGs use flexible schema",
			"KGs represent relationships explicitly",
			"KGs support semantic queries",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "Knowledge Graphs offer flexible schemas, explicit relationship representation, and semantic querying capabilities unlike rigid relational databases.",
	},
	{
		topic:    "Basics of Knowledge Graphs",
		level:    model.ExtendedAbstract,
		question: "Design a Knowledge Graph solution for a smart city traffic management system. What would be the key entities and relationships?",
		options: [4]string{
			"Traffic lights, roads, vehicles with timing relationships",
			"Only vehicle location data",
			"Just traffic signal data",
			"Citizens, traffic lights, roads, vehicles, weather, events with complex interdependencies",
		},
		correct:     "Citizens, traffic lights, roads, vehicles, weather, events with complex interdependencies",
		explanation: "A comprehensive smart city KG would integrate multiple data sources and their complex relationships to enable intelligent traffic optimization and city planning.",
	},
	{
		topic:    "Triples, RDF & Ontologies",
		level:    model.UniStructural,
		question: "What does RDF stand for?",
		options: [4]string{
			"Resource Description Framework",
			"Relational Data Format",
			"Rapid Development Framework",
			"Remote Data Fetch",
		},
		correct:     "Resource Description Framework",
		explanation: "RDF (Resource Description Framework) is a standard for describing resources and their relationships in a machine-readable format.",
	},
	{
		topic:    "Triples, RDF & Ontologies",
		level:    model.MultiStructural,
		question: "What are the three components of an RDF triple?",
		options: [4]string{
			"Subject, Predicate, Object",
			"Entity, Property, Value",
			"Node, Edge, Node",
			"All refer to the same concept",
		},
		correct:     "All refer to the same concept",
		explanation: "RDF triples consist of Subject-Predicate-Object, which can also be called Entity-Property-Value or Node-Edge-Node.",
	},
	{
		topic:    "Triples, RDF & Ontologies",
		level:    model.Relational,
		question: "How do ontologies enhance Knowledge Graphs?",
		options: [4]string{
			"They provide vocabulary",
			"They define relationships",
			"They enable reasoning",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "Ontologies provide structured vocabulary, define valid relationships, and enable automated reasoning over Knowledge Graphs.",
	},
	{
		topic:    "SPARQL Queries",
		level:    model.UniStructural,
		question: "What is SPARQL used for?",
		options: [4]string{
			"Querying RDF data",
			"Creating databases",
			"Web scraping",
			"Image processing",
		},
		correct:     "Querying RDF data",
		explanation: "SPARQL is a query language specifically designed for querying RDF data and Knowledge Graphs.",
	},
	{
		topic:    "SPARQL Queries",
		level:    model.MultiStructural,
		question: "Which SPARQL keywords are used for basic queries?",
		options: [4]string{
			"SELECT, WHERE",
			"FROM, ORDER BY",
			"FILTER, OPTIONAL",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "SPARQL uses SELECT and WHERE for basic queries, FROM for specifying data sources, ORDER BY for sorting, and FILTER/OPTIONAL for advanced querying.",
	},
	{
		topic:    "SPARQL Queries",
		level:    model.Relational,
		question: "How does SPARQL querying compare to SQL?",
		options: [4]string{
			"SPARQL works with graph patterns",
			"SQL works with tables",
			"SPARQL supports semantic matching",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "SPARQL queries graph patterns and supports semantic matching, while SQL queries structured tables with fixed schemas.",
	},
	{
		topic:    "Applications of KG",
		level:    model.ExtendedAbstract,
		question: "Design a Knowledge Graph application for preserving Nepali cultural heritage. What would be the key components?",
		options: [4]string{
			"Festival ontology with regional variations",
			"Historical timeline with cultural events",
			"Artifact catalog with provenance",
			"All integrated with multilingual support",
		},
		correct:     "All integrated with multilingual support",
		explanation: "A comprehensive cultural heritage KG would integrate festivals, history, artifacts, and multilingual support to preserve and share Nepali culture effectively.",
	},
	{
		topic:    "Building a KG: Tools & Standards",
		level:    model.UniStructural,
		question: "Which tool is commonly used for building Knowledge Graphs?",
		options: [4]string{
			"Neo4j",
			"Apache Jena",
			"Protégé",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "Neo4j (graph database), Apache Jena (RDF framework), and Protégé (ontology editor) are all popular tools for building Knowledge Graphs.",
	},
	{
		topic:    "Building a KG: Tools & Standards",
		level:    model.MultiStructural,
		question: "What standards are important for Knowledge Graph interoperability?",
		options: [4]string{
			"RDF, RDFS, OWL",
			"SPARQL, JSON-LD",
			"Schema.org vocabulary",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "Interoperability requires standards like RDF/RDFS/OWL for data modeling, SPARQL for querying, JSON-LD for web integration, and Schema.org for common vocabulary.",
	},
	{
		topic:    "Reasoning & Inference in KG",
		level:    model.Relational,
		question: "How does reasoning enhance Knowledge Graphs?",
		options: [4]string{
			"Derives new facts",
			"Validates consistency",
			"Enables intelligent queries",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "Reasoning engines can derive new facts from existing ones, validate data consistency, and enable more intelligent querying capabilities.",
	},
	{
		topic:    "KGs in LLM Prompt Engineering",
		level:    model.ExtendedAbstract,
		question: "How can Knowledge Graphs improve LLM prompt engineering?",
		options: [4]string{
			"Provide structured context",
			"Enable fact verification",
			"Support multi-hop reasoning",
			"All of the above",
		},
		correct:     "All of the above",
		explanation: "Knowledge Graphs can provide structured context, enable fact verification, and support complex multi-hop reasoning to enhance LLM performance and reliability.",
	},
}

// seedQuestions 在题库为空时写入默认题目
func seedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sq := range defaultQuestions {
		q, err := model.NewQuestion(sq.topic, sq.level, sq.question, sq.options[:], sq.correct, sq.explanation)
		if err != nil {
			return err
		}
		if err := db.Create(q).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d default questions", len(defaultQuestions))
	return nil
}
