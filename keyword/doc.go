// Package keyword derives search keyword sets from persona and job
// descriptions.
//
// Free text is tokenized into frequency-ordered keywords, which an Expander
// then enriches with related terms. Two expanders exist: a learned TF-IDF
// similarity model over fixed domain vocabularies, and a rule-based
// association table the model degrades to when it cannot serve a request.
package keyword
