// Package morph は韓国語の分かち書き単位(어절)を形態素に分析する
//
// Analyzer は一つの어절を体言・用言・助詞・語尾などに分け、辞書で確かめられた順に候補を返す。
// Reconstruct は分かち書きされていない文字列から어절の境界を復元する。
// 辞書は dictionary パッケージのものを共有し、Analyzer は複数のgoroutineから同時に使ってよい。
package morph
