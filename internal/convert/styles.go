package convert

// documentCSS is the A4 print stylesheet applied to every converted
// document. @page rules paginate the output when printed.
const documentCSS = `
@page {
    size: A4;
    margin: 2cm;
    @top-center {
        content: "HR Document";
        font-size: 10pt;
        color: #666;
    }
    @bottom-center {
        content: "Page " counter(page) " of " counter(pages);
        font-size: 10pt;
        color: #666;
    }
}

body {
    font-family: 'Arial', sans-serif;
    font-size: 12pt;
    line-height: 1.6;
    color: #333;
}

h1 {
    font-size: 24pt;
    font-weight: bold;
    color: #2c3e50;
    border-bottom: 2px solid #3498db;
    padding-bottom: 10px;
    margin-bottom: 20px;
}

h2 {
    font-size: 18pt;
    font-weight: bold;
    color: #34495e;
    margin-top: 25px;
    margin-bottom: 15px;
}

h3 {
    font-size: 14pt;
    font-weight: bold;
    color: #2c3e50;
    margin-top: 20px;
    margin-bottom: 10px;
}

p {
    margin-bottom: 12px;
    text-align: justify;
}

table {
    width: 100%;
    border-collapse: collapse;
    margin: 20px 0;
}

th, td {
    border: 1px solid #ddd;
    padding: 12px;
    text-align: left;
}

th {
    background-color: #f8f9fa;
    font-weight: bold;
    color: #2c3e50;
}

ul, ol {
    margin-bottom: 15px;
    padding-left: 20px;
}

li {
    margin-bottom: 5px;
}

.signature-section {
    margin-top: 40px;
    border-top: 1px solid #ddd;
    padding-top: 20px;
}
`
